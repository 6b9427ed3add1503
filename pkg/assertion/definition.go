// Package assertion provides a declarative assertion engine.
// Assertions are described by Definitions, evaluated against named
// values, and every failure carries the rendered message of the
// collection check behind it.
package assertion

import (
	"digital.vasic.assertions/pkg/description"
	"digital.vasic.assertions/pkg/failure"
)

// Definition describes a single assertion to evaluate against a
// named value.
type Definition struct {
	// Type is the evaluator type (e.g., "contains_sequence",
	// "contains_only", "not_empty").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check.
	Target string `json:"target" yaml:"target"`

	// Values holds the expected values for containment checks.
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Message describes the assertion context. It prefixes the
	// failure text as "[Message] ".
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// FailureMessage replaces the rendered failure text when
	// set.
	FailureMessage string `json:"failure_message,omitempty" yaml:"failure_message,omitempty"`
}

// Info returns the assertion context for d.
func (d Definition) Info() failure.Info {
	return failure.Info{
		Description:       description.New(d.Message),
		OverridingMessage: d.FailureMessage,
	}
}

// Result captures the outcome of evaluating a single assertion.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected holds the values the assertion looked for.
	Expected []any `json:"expected,omitempty"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is the failure text, or a short confirmation when
	// the assertion passed.
	Message string `json:"message"`
}
