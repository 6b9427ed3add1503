package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var crew = map[string]any{
	"crew": []any{"Yoda", "Luke", "Leia", "Obi-Wan"},
}

func TestAllPassComposite_AllPass(t *testing.T) {
	e := NewEngine()

	assertions := []Definition{
		{Type: TypeNotEmpty, Target: "crew"},
		{Type: TypeContainsSequence, Target: "crew", Values: []any{"Luke", "Leia"}},
	}

	r := AllPassComposite(e, assertions, crew)
	assert.True(t, r.Passed)
	assert.Equal(t, "all_pass", r.Type)
	assert.Contains(t, r.Message, "2 assertions passed")
}

func TestAllPassComposite_OneFails(t *testing.T) {
	e := NewEngine()

	assertions := []Definition{
		{Type: TypeNotEmpty, Target: "crew"},
		{Type: TypeContains, Target: "crew", Values: []any{"Han"}},
		{Type: TypeEmpty, Target: "crew"},
	}

	r := AllPassComposite(e, assertions, crew)
	assert.False(t, r.Passed)
	assert.Equal(t, "all_pass", r.Type)
	assert.Equal(t,
		"2 of 3 assertions failed; first: 'contains' on target 'crew': "+
			"expecting:<['Yoda', 'Luke', 'Leia', 'Obi-Wan']> to contain:<['Han']> "+
			"but could not find:<['Han']>",
		r.Message)
}

func TestAnyPassComposite_OneMatches(t *testing.T) {
	e := NewEngine()

	assertions := []Definition{
		{Type: TypeContains, Target: "crew", Values: []any{"Han"}},
		{Type: TypeContains, Target: "crew", Values: []any{"Leia"}},
	}

	r := AnyPassComposite(e, assertions, crew)
	assert.True(t, r.Passed)
	assert.Equal(t, "any_pass", r.Type)
}

func TestAnyPassComposite_NoneMatch(t *testing.T) {
	e := NewEngine()

	assertions := []Definition{
		{Type: TypeContains, Target: "crew", Values: []any{"Han"}},
		{Type: TypeEmpty, Target: "crew"},
	}

	r := AnyPassComposite(e, assertions, crew)
	assert.False(t, r.Passed)
	assert.Equal(t, "none of 2 assertions passed", r.Message)
}

func TestCompositeAllPass_AsEvaluator(t *testing.T) {
	e := NewEngine()

	eval := CompositeAllPass(e, []Definition{
		{Type: TypeNotEmpty},
		{Type: TypeNoDuplicates},
	})
	require.NoError(t, e.Register("unique_crew", eval))

	r := e.Evaluate(
		Definition{Type: "unique_crew", Target: "crew"},
		[]any{"Yoda", "Yoda"},
	)
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "found duplicate(s):<['Yoda']>")

	r = e.Evaluate(
		Definition{Type: "unique_crew", Target: "crew"},
		[]any{"Yoda", "Han"},
	)
	assert.True(t, r.Passed)
}

func TestCompositeAnyPass_AsEvaluator(t *testing.T) {
	e := NewEngine()

	eval := CompositeAnyPass(e, []Definition{
		{Type: TypeContains, Values: []any{"Han"}},
		{Type: TypeContains, Values: []any{"Chewie"}},
	})

	passed, _ := eval(Definition{}, []any{"Chewie"})
	assert.True(t, passed)

	passed, msg := eval(Definition{}, []any{"Lando"})
	assert.False(t, passed)
	assert.Equal(t, "none of 2 assertions passed", msg)
}

func TestRetarget_DoesNotModifyInput(t *testing.T) {
	defs := []Definition{{Type: TypeEmpty, Target: "original"}}

	out, values := retarget(defs, []any{})

	assert.Equal(t, "original", defs[0].Target)
	assert.Equal(t, "value", out[0].Target)
	assert.Contains(t, values, "value")
}
