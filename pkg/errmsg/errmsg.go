// Package errmsg provides the messages that describe why an
// assertion failed. Each message type models one failure reason and
// captures the evidence needed to explain it at construction time;
// rendering is a pure function of that evidence and a description.
package errmsg

import (
	"slices"

	"digital.vasic.assertions/pkg/description"
)

// ErrorMessage renders the text of a failed assertion.
type ErrorMessage interface {
	// Create returns the failure text, prefixed with the given
	// description.
	Create(d description.Description) string
}

// snapshot copies evidence so later changes made by the caller do
// not leak into the rendered message.
func snapshot(values []any) []any {
	return slices.Clone(values)
}

// isEmptyMessage reports that a group of elements was empty when it
// should not have been.
type isEmptyMessage struct{}

var isEmpty = isEmptyMessage{}

// IsEmpty returns the message for an unexpectedly empty group of
// elements (a slice, a map or a string).
func IsEmpty() ErrorMessage {
	return isEmpty
}

// Create implements ErrorMessage.
func (isEmptyMessage) Create(d description.Description) string {
	return defaultFormatter.FormatMessage("%sunexpected empty", d)
}

// shouldNotBeNullMessage reports an absent actual value.
type shouldNotBeNullMessage struct{}

var shouldNotBeNull = shouldNotBeNullMessage{}

// ShouldNotBeNull returns the message for an absent actual value.
func ShouldNotBeNull() ErrorMessage {
	return shouldNotBeNull
}

// Create implements ErrorMessage.
func (shouldNotBeNullMessage) Create(d description.Description) string {
	return defaultFormatter.FormatMessage(
		"%sexpecting actual not to be null", d,
	)
}

// IsNotEmptyMessage reports a group of elements that should have
// been empty.
type IsNotEmptyMessage struct {
	actual []any
}

// IsNotEmpty creates the message for a group that should have been
// empty.
func IsNotEmpty(actual []any) IsNotEmptyMessage {
	return IsNotEmptyMessage{actual: snapshot(actual)}
}

// Create implements ErrorMessage.
func (m IsNotEmptyMessage) Create(d description.Description) string {
	return defaultFormatter.FormatMessage(
		"%sexpecting empty but was:<%s>", d, m.actual,
	)
}
