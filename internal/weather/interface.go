package weather

import "context"

// UseCase defines the business logic interface for the weather lookup.
type UseCase interface {
	// SetCity records the new city text and runs the derivation pass:
	// empty clears everything, short text debounces, anything else
	// geocodes and fetches the forecast. The returned snapshot is the
	// state after this trigger resolved (or was superseded by a newer
	// one). Lookup failures live in the snapshot, not in an error return.
	SetCity(ctx context.Context, city string) Snapshot

	// Snapshot returns a copy of the current lookup state.
	Snapshot(ctx context.Context) Snapshot
}
