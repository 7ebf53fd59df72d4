package currency

import "context"

// UseCase defines the business logic interface for the currency domain.
type UseCase interface {
	// Update applies new form values and recomputes the conversion.
	// Invalid input is rejected with an error and leaves state untouched.
	Update(ctx context.Context, input UpdateInput) (Snapshot, error)
	// Snapshot returns a copy of the current conversion state.
	Snapshot(ctx context.Context) Snapshot
}
