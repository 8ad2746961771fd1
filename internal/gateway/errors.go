package gateway

import "errors"

// ErrNotImplemented is returned by operations the Pin API has no equivalent
// for (void, recurring, unstore). No network call is made.
var ErrNotImplemented = errors.New("operation not supported by the pin gateway")

// RequiredFieldError reports a missing billing address or address sub-field
// while building a card payload.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return "required field missing: " + e.Field
}
