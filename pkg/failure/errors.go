package failure

import (
	"errors"
	"fmt"

	"digital.vasic.assertions/pkg/errmsg"
)

var (
	// ErrNilValues is returned when the values to look for are
	// nil.
	ErrNilValues = errors.New(
		"the values to look for should not be nil",
	)

	// ErrEmptyValues is returned when the values to look for are
	// empty.
	ErrEmptyValues = errors.New(
		"the values to look for should not be empty",
	)
)

// AssertionError is returned when the checked condition does not
// hold. Message is the final failure text.
type AssertionError struct {
	Message string

	// Cause is the message that produced the text, kept so
	// callers can inspect the evidence.
	Cause errmsg.ErrorMessage
}

// Error implements error.
func (e *AssertionError) Error() string {
	return e.Message
}

// UsageError is returned when an assertion was called with
// invalid arguments. It is never produced by a failed check.
type UsageError struct {
	// Op is the assertion that was misused.
	Op  string
	Err error
}

// Error implements error.
func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError wraps err as a misuse of op.
func NewUsageError(op string, err error) *UsageError {
	return &UsageError{Op: op, Err: err}
}

// IsAssertionError reports whether err is, or wraps, an
// AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

// IsUsageError reports whether err is, or wraps, a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// CheckValuesToLookFor validates the values passed to a
// containment assertion.
func CheckValuesToLookFor(op string, values []any) error {
	if values == nil {
		return NewUsageError(op, ErrNilValues)
	}
	if len(values) == 0 {
		return NewUsageError(op, ErrEmptyValues)
	}
	return nil
}
