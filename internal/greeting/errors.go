package greeting

import "errors"

// Domain-specific errors for the greeting package.
var (
	ErrEmptyText = errors.New("model returned no text")
)
