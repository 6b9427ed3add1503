package assertion

import (
	"fmt"
	"reflect"

	"digital.vasic.assertions/pkg/collections"
	"digital.vasic.assertions/pkg/failure"
	"digital.vasic.assertions/pkg/logging"
)

// Built-in assertion types.
const (
	TypeContainsSequence = "contains_sequence"
	TypeContainsOnly     = "contains_only"
	TypeContains         = "contains"
	TypeNotEmpty         = "not_empty"
	TypeEmpty            = "empty"
	TypeNoDuplicates     = "no_duplicates"
)

// valuesCheck is a collection assertion that looks for the
// definition's Values in the actual list.
type valuesCheck func(
	c *collections.Collections,
	info failure.Info,
	actual, values []any,
) error

// listCheck is a collection assertion on the actual list alone.
type listCheck func(
	c *collections.Collections,
	info failure.Info,
	actual []any,
) error

// registerDefaults registers all built-in evaluators.
func (e *DefaultEngine) registerDefaults() {
	e.evaluators[TypeContainsSequence] = e.withValues(
		(*collections.Collections).AssertContainsSequence,
	)
	e.evaluators[TypeContainsOnly] = e.withValues(
		(*collections.Collections).AssertContainsOnly,
	)
	e.evaluators[TypeContains] = e.withValues(
		(*collections.Collections).AssertContains,
	)
	e.evaluators[TypeNotEmpty] = e.withList(
		(*collections.Collections).AssertNotEmpty,
	)
	e.evaluators[TypeEmpty] = e.withList(
		(*collections.Collections).AssertEmpty,
	)
	e.evaluators[TypeNoDuplicates] = e.withList(
		(*collections.Collections).AssertDoesNotHaveDuplicates,
	)
}

func (e *DefaultEngine) withValues(check valuesCheck) Evaluator {
	return func(assertion Definition, value any) (bool, string) {
		return e.run(assertion, value,
			func(info failure.Info, actual []any) error {
				return check(e.collections, info, actual, assertion.Values)
			})
	}
}

func (e *DefaultEngine) withList(check listCheck) Evaluator {
	return func(assertion Definition, value any) (bool, string) {
		return e.run(assertion, value,
			func(info failure.Info, actual []any) error {
				return check(e.collections, info, actual)
			})
	}
}

// run converts value to a list, applies check and turns its error
// into an evaluator outcome.
func (e *DefaultEngine) run(
	assertion Definition,
	value any,
	check func(info failure.Info, actual []any) error,
) (bool, string) {
	actual, ok := toList(value)
	if !ok {
		return false, fmt.Sprintf("value is not a list: %T", value)
	}

	err := check(assertion.Info(), actual)
	switch {
	case err == nil:
		return true, fmt.Sprintf("%s passed", assertion.Type)
	case failure.IsUsageError(err):
		e.logger.Warn("invalid assertion",
			logging.AssertionField(assertion.Type),
			logging.ErrorField(err),
		)
		return false, "invalid assertion: " + err.Error()
	default:
		return false, err.Error()
	}
}

// toList converts a slice or array of any element type to []any.
// A nil value converts to a nil list, which the collection checks
// report as an absent actual value.
func toList(v any) ([]any, bool) {
	if v == nil {
		return nil, true
	}
	if list, ok := v.([]any); ok {
		return list, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, true
		}
	case reflect.Array:
	default:
		return nil, false
	}

	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
