// Package description provides the labels attached to assertion
// failures so that a reader can tell which check produced them.
package description

// Description identifies the context of an assertion (typically a
// test or property name). Its value is prefixed to every rendered
// failure message.
type Description interface {
	// Value returns the text of the description.
	Value() string
}

// TextDescription is an immutable Description backed by a plain
// string.
type TextDescription struct {
	value string
}

// New creates a TextDescription with the given text.
func New(value string) TextDescription {
	return TextDescription{value: value}
}

// Empty returns a Description with no text.
func Empty() TextDescription {
	return TextDescription{}
}

// Value returns the description text.
func (d TextDescription) Value() string {
	return d.value
}

// String implements fmt.Stringer.
func (d TextDescription) String() string {
	return d.value
}

// ValueOf returns the text of d, or "" when d is nil.
func ValueOf(d Description) string {
	if d == nil {
		return ""
	}
	return d.Value()
}
