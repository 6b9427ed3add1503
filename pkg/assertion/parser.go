package assertion

import "strings"

// ParseAssertionString parses a compact assertion string of the
// form "type:v1,v2,..." into its components. If no colon is
// present the entire string is treated as the type and values is
// nil. Values are trimmed strings.
//
// Examples:
//
//	"contains_sequence:Luke,Leia" -> ("contains_sequence", ["Luke", "Leia"])
//	"not_empty"                   -> ("not_empty", nil)
//	"contains: Han"               -> ("contains", ["Han"])
func ParseAssertionString(
	s string,
) (assertionType string, values []any) {
	parts := strings.SplitN(s, ":", 2)
	assertionType = strings.TrimSpace(parts[0])

	if len(parts) < 2 {
		return
	}

	for _, v := range strings.Split(parts[1], ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if values == nil {
		values = []any{}
	}

	return
}

// ParseDefinition builds a Definition for target from a compact
// assertion string.
func ParseDefinition(target, s string) Definition {
	assertionType, values := ParseAssertionString(s)
	return Definition{
		Type:   assertionType,
		Target: target,
		Values: values,
	}
}
