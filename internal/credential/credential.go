// Package credential reads API credentials from the process environment.
package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrNameEmpty = errors.New("credential variable name is empty")
	ErrNotFound  = errors.New("credential variable is not set")
	ErrEmpty     = errors.New("credential variable is empty")
)

// FromEnv returns the value of the environment variable called name.
// The value is returned as-is apart from trimming surrounding whitespace.
func FromEnv(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameEmpty
	}

	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	return value, nil
}

// Mask redacts a credential for logging, keeping at most a 4 character prefix.
func Mask(value string) string {
	r := []rune(value)
	if len(r) <= 8 {
		return "****"
	}
	return string(r[:4]) + "****"
}
