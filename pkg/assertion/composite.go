package assertion

import "fmt"

// AllPassComposite evaluates assertions and requires every one of
// them to pass. On failure the message names how many failed and
// quotes the first failure.
func AllPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}

	if len(failed) == 0 {
		return Result{
			Type:   "all_pass",
			Passed: true,
			Message: fmt.Sprintf(
				"all %d assertions passed", len(results),
			),
		}
	}

	first := failed[0]
	return Result{
		Type:   "all_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"%d of %d assertions failed; first: '%s' on target '%s': %s",
			len(failed), len(results),
			first.Type, first.Target, first.Message,
		),
	}
}

// AnyPassComposite evaluates assertions and requires at least one
// of them to pass.
func AnyPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if r.Passed {
			return Result{
				Type:   "any_pass",
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' passed",
					r.Type, r.Target,
				),
			}
		}
	}

	return Result{
		Type:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed",
			len(results),
		),
	}
}

// CompositeAllPass returns an Evaluator that applies every
// sub-assertion to the evaluated value and requires all to pass.
// The sub-assertions' targets are ignored.
func CompositeAllPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		defs, values := retarget(subAssertions, value)
		r := AllPassComposite(engine, defs, values)
		return r.Passed, r.Message
	}
}

// CompositeAnyPass returns an Evaluator that applies every
// sub-assertion to the evaluated value and requires at least one
// to pass.
func CompositeAnyPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		defs, values := retarget(subAssertions, value)
		r := AnyPassComposite(engine, defs, values)
		return r.Passed, r.Message
	}
}

// retarget points every definition at a single synthetic target
// holding value.
func retarget(
	defs []Definition,
	value any,
) ([]Definition, map[string]any) {
	const target = "value"

	out := make([]Definition, len(defs))
	for i, d := range defs {
		d.Target = target
		out[i] = d
	}
	return out, map[string]any{target: value}
}
