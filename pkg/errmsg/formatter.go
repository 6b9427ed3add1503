package errmsg

import (
	"fmt"

	"digital.vasic.assertions/pkg/description"
	"digital.vasic.assertions/pkg/format"
)

// Formatter assembles failure messages from a fixed template and
// the evidence substituted into it. It holds no state and is safe
// to share.
type Formatter struct{}

var defaultFormatter = Formatter{}

// DefaultFormatter returns the shared Formatter.
func DefaultFormatter() Formatter {
	return defaultFormatter
}

// Prefix returns "[<description>] ", or "" when d is nil or has
// no text.
func (Formatter) Prefix(d description.Description) string {
	value := description.ValueOf(d)
	if value == "" {
		return ""
	}
	return "[" + value + "] "
}

// FormatMessage renders template. The first %s receives the
// description prefix; each following %s receives the canonical
// representation of the matching argument.
func (f Formatter) FormatMessage(
	template string,
	d description.Description,
	args ...any,
) string {
	values := make([]any, 0, len(args)+1)
	values = append(values, f.Prefix(d))
	for _, a := range args {
		values = append(values, format.ToString(a))
	}
	return fmt.Sprintf(template, values...)
}
