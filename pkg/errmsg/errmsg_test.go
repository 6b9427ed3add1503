package errmsg

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.assertions/pkg/description"
)

var testDescription = description.New("Test")

func TestIsEmpty_Create(t *testing.T) {
	assert.Equal(t, "[Test] unexpected empty",
		IsEmpty().Create(testDescription))
	assert.Equal(t, "unexpected empty", IsEmpty().Create(nil))
	assert.Equal(t, IsEmpty(), IsEmpty())
}

func TestShouldNotBeNull_Create(t *testing.T) {
	assert.Equal(t, "[Test] expecting actual not to be null",
		ShouldNotBeNull().Create(testDescription))
}

func TestIsNotEmpty_Create(t *testing.T) {
	msg := IsNotEmpty([]any{"Yoda"})
	assert.Equal(t, "[Test] expecting empty but was:<['Yoda']>",
		msg.Create(testDescription))
}

func TestDoesNotContainExclusively_Create(t *testing.T) {
	actual := []any{"Yoda", "Han"}

	tests := []struct {
		name       string
		expected   []any
		unexpected []any
		notFound   []any
		message    string
	}{
		{
			name:       "default message",
			expected:   []any{"Luke", "Yoda"},
			unexpected: []any{"Han"},
			notFound:   []any{"Luke"},
			message: "[Test] expected:<['Yoda', 'Han']> to contain:<['Luke', 'Yoda']> " +
				"exclusively; could not find:<['Luke']> and got unexpected:<['Han']>",
		},
		{
			name:       "ignores not found if empty",
			expected:   []any{"Yoda"},
			unexpected: []any{"Han"},
			notFound:   []any{},
			message: "[Test] expected:<['Yoda', 'Han']> to contain:<['Yoda']> " +
				"exclusively, but got unexpected:<['Han']>",
		},
		{
			name:       "ignores unexpected if empty",
			expected:   []any{"Luke", "Yoda", "Han"},
			unexpected: nil,
			notFound:   []any{"Luke"},
			message: "[Test] expected:<['Yoda', 'Han']> to contain:<['Luke', 'Yoda', 'Han']> " +
				"exclusively, but could not find:<['Luke']>",
		},
		{
			name:     "renders both empty",
			expected: []any{"Yoda", "Han"},
			message:  "[Test] expected:<['Yoda', 'Han']> to contain:<['Yoda', 'Han']> exclusively",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := DoesNotContainExclusively(
				actual, tt.expected, tt.unexpected, tt.notFound,
			)
			assert.Equal(t, tt.message, msg.Create(testDescription))
		})
	}
}

func TestDoesNotContainSequence_Create(t *testing.T) {
	msg := DoesNotContainSequence(
		[]any{"Yoda", "Luke", "Leia", "Obi-Wan"},
		[]any{"Leia", "Obi-Wan", "Han"},
	)
	assert.Equal(t,
		"[Test] expecting:<['Yoda', 'Luke', 'Leia', 'Obi-Wan']> "+
			"to contain sequence:<['Leia', 'Obi-Wan', 'Han']>",
		msg.Create(testDescription))
}

func TestDoesNotContain_Create(t *testing.T) {
	msg := DoesNotContain(
		[]any{"Yoda"}, []any{"Yoda", "Luke"}, []any{"Luke"},
	)
	assert.Equal(t,
		"[Test] expecting:<['Yoda']> to contain:<['Yoda', 'Luke']> "+
			"but could not find:<['Luke']>",
		msg.Create(testDescription))
}

func TestHasDuplicates_Create(t *testing.T) {
	msg := HasDuplicates([]any{"Yoda", "Yoda", "Luke"}, []any{"Yoda"})
	assert.Equal(t,
		"[Test] found duplicate(s):<['Yoda']> in:<['Yoda', 'Yoda', 'Luke']>",
		msg.Create(testDescription))
}

func TestEvidence_IsSnapshot(t *testing.T) {
	actual := []any{"Yoda", "Luke"}
	sequence := []any{"Han"}
	msg := DoesNotContainSequence(actual, sequence)

	actual[0] = "Vader"
	sequence[0] = "Leia"

	assert.Equal(t,
		"expecting:<['Yoda', 'Luke']> to contain sequence:<['Han']>",
		msg.Create(description.Empty()))
}

func TestCreate_EmptyEvidence(t *testing.T) {
	messages := []ErrorMessage{
		IsNotEmpty(nil),
		DoesNotContainExclusively(nil, nil, nil, nil),
		DoesNotContainSequence(nil, nil),
		DoesNotContain(nil, nil, nil),
		HasDuplicates(nil, nil),
	}

	for _, m := range messages {
		assert.NotPanics(t, func() { m.Create(nil) })
		assert.NotEmpty(t, m.Create(nil))
	}
}

func TestCreate_NilPointerEvidence(t *testing.T) {
	var ship *url.URL
	msg := DoesNotContainSequence([]any{"Yoda", ship}, []any{"Han"})

	var got string
	assert.NotPanics(t, func() { got = msg.Create(nil) })
	assert.Equal(t,
		"expecting:<['Yoda', null]> to contain sequence:<['Han']>", got)
}

func TestFormatter_Prefix(t *testing.T) {
	f := DefaultFormatter()
	assert.Equal(t, "[crew] ", f.Prefix(description.New("crew")))
	assert.Equal(t, "", f.Prefix(description.Empty()))
	assert.Equal(t, "", f.Prefix(nil))
}

func TestFormatter_FormatMessage(t *testing.T) {
	f := DefaultFormatter()
	got := f.FormatMessage(
		"%sexpected:<%s> but was:<%s>",
		description.New("Test"), "Luke", 3,
	)
	assert.Equal(t, "[Test] expected:<'Luke'> but was:<3>", got)
}
