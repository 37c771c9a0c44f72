package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("order not found")
)

// ValidationError marks input the caller can correct: a bad restaurant
// reference, an unavailable menu item, a non-positive quantity.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is caller-correctable: either a
// *ValidationError or an illegal status transition.
func IsValidation(err error) bool {
	var ve *ValidationError
	var te *TransitionError
	return errors.As(err, &ve) || errors.As(err, &te)
}
