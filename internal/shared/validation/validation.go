// Package validation carries field-level input errors across bounded contexts
// so the HTTP layer can report which field blocked a request.
package validation

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid input")

type Error struct {
	Field   string
	Message string
}

func Field(field string, message string) *Error {
	return &Error{Field: field, Message: message}
}

func Fieldf(field string, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}
