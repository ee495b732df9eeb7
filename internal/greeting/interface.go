package greeting

import "context"

// UseCase defines the business logic interface for the greeting domain.
type UseCase interface {
	// Greet sends the fixed prompt to the model once and returns its completion.
	Greet(ctx context.Context) (Output, error)
}
