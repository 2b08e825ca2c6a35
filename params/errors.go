package params

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter matches every failure returned by the guards in this
// package via errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Error is an invalid parameter failure. Field is empty when the failure is
// not tied to a single field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalidParameter(field string, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}
