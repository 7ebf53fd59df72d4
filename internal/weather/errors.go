package weather

import "errors"

// Lookup errors surface through Snapshot.Err; both are recoverable by
// changing the city text again. Transport details stay in the logs.
var (
	ErrCityNotFound = errors.New("we couldn't find your city")
	ErrLookupFailed = errors.New("something went wrong with fetching")
)
