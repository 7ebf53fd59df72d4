package weather

// Status is the lookup state for the current city text.
type Status string

const (
	StatusIdle      Status = "idle"      // city text empty
	StatusDebounced Status = "debounced" // city text too short to geocode
	StatusResolving Status = "resolving" // geocode/forecast in flight
	StatusResolved  Status = "resolved"  // forecast populated
	StatusFailed    Status = "failed"    // error populated
)

// MinQueryLen is the trigger threshold: shorter city text is never geocoded.
// This is a length gate, not a time-based debounce.
const MinQueryLen = 3

// ResolvedLocation is the first geocoding candidate for the current city.
type ResolvedLocation struct {
	Name      string // place name as returned by the geocoder
	Flag      string // regional-indicator pair for the country code
	Latitude  float64
	Longitude float64
	Timezone  string
}

// Day is one forecast entry. Index 0 is the current day.
type Day struct {
	Date    string  // YYYY-MM-DD
	Label   string  // "Today" for the first entry, else abbreviated weekday
	Code    int     // WMO weather code
	Icon    string  // glyph for the code, IconUnknown when unmapped
	TempMin float64 // degrees Celsius
	TempMax float64
}

// Snapshot is the full lookup state handed to collaborators. Err and Days
// are mutually exclusive: a populated error always clears the forecast.
type Snapshot struct {
	City     string
	Status   Status
	Location *ResolvedLocation
	Days     []Day
	Err      string
}
