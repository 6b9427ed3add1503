package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssertionString(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedType   string
		expectedValues []any
	}{
		{
			name:           "sequence with values",
			input:          "contains_sequence:Luke,Leia",
			expectedType:   "contains_sequence",
			expectedValues: []any{"Luke", "Leia"},
		},
		{
			name:           "values are trimmed",
			input:          "contains: Han , Chewie ",
			expectedType:   "contains",
			expectedValues: []any{"Han", "Chewie"},
		},
		{
			name:           "no values",
			input:          "not_empty",
			expectedType:   "not_empty",
			expectedValues: nil,
		},
		{
			name:           "colon without values",
			input:          "contains:",
			expectedType:   "contains",
			expectedValues: []any{},
		},
		{
			name:           "value containing colon",
			input:          "contains:a:b",
			expectedType:   "contains",
			expectedValues: []any{"a:b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, values := ParseAssertionString(tt.input)
			assert.Equal(t, tt.expectedType, typ)
			assert.Equal(t, tt.expectedValues, values)
		})
	}
}

func TestParseDefinition(t *testing.T) {
	d := ParseDefinition("crew", "contains_only:Yoda,Han")

	assert.Equal(t, Definition{
		Type:   TypeContainsOnly,
		Target: "crew",
		Values: []any{"Yoda", "Han"},
	}, d)
}

// An empty value list must reach the checker as a usage error
// rather than silently passing.
func TestParseDefinition_EmptyValuesIsUsageError(t *testing.T) {
	d := ParseDefinition("crew", "contains:")

	r := NewEngine().Evaluate(d, []any{"Yoda"})

	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "should not be empty")
}
