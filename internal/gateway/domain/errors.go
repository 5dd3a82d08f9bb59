package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest reports a request body that is malformed or is missing
// required fields. It never reaches the identity provider.
var ErrInvalidRequest = errors.New("invalid request")

// RequireFields returns an ErrInvalidRequest naming the first empty field.
// Pairs are field name followed by value.
func RequireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, pairs[i])
		}
	}
	return nil
}
