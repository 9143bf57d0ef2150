package apperrors

import (
	"errors"
	"fmt"
)

// ErrCertificationMismatch is returned when the supplied certification code
// does not exactly match the stored one.
var ErrCertificationMismatch = errors.New("certification code does not match")

// NotFoundError reports a failed lookup with enough context to produce a
// precise diagnostic: the collection queried, the field(s) and the value(s).
type NotFoundError struct {
	Source string
	Field  string
	Value  string
}

func NewNotFound(source, field, value string) *NotFoundError {
	return &NotFoundError{Source: source, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s=%s not found", e.Source, e.Field, e.Value)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
