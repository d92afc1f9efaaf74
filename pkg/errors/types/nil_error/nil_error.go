package nil_error

import "errors"

var ErrNil = errors.New("nil value")

// Error reports a required value, named by Field, that was nil.
type Error struct {
	Field string
}

func (e *Error) Is(target error) bool {
	return target == ErrNil
}

func (e *Error) Error() string {
	return "nil " + e.Field
}

func New(field string) *Error {
	return &Error{Field: field}
}
