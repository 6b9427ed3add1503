package assertion

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.assertions/pkg/collections"
	"digital.vasic.assertions/pkg/logging"
)

// Engine defines the interface for assertion evaluation engines.
type Engine interface {
	// Evaluate checks a single assertion against the given
	// value.
	Evaluate(assertion Definition, value any) Result

	// EvaluateAll checks multiple assertions against a map of
	// named values. Each assertion's Target field is used as
	// the key into the values map.
	EvaluateAll(
		assertions []Definition,
		values map[string]any,
	) []Result

	// Register adds a custom evaluator for the given assertion
	// type. Returns an error if the type is already registered.
	Register(assertionType string, evaluator Evaluator) error
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithCollections sets the collection checks behind the built-in
// evaluators.
func WithCollections(c *collections.Collections) Option {
	return func(e *DefaultEngine) {
		e.collections = c
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(logger logging.Logger) Option {
	return func(e *DefaultEngine) {
		e.logger = logger
	}
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu          sync.RWMutex
	evaluators  map[string]Evaluator
	collections *collections.Collections
	logger      logging.Logger
}

// NewEngine creates a DefaultEngine with the built-in evaluators
// pre-registered.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{
		evaluators:  make(map[string]Evaluator),
		collections: collections.Instance(),
		logger:      logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

// Register adds a custom evaluator for the given assertion type.
// Returns an error if the type is already registered.
func (e *DefaultEngine) Register(
	assertionType string,
	evaluator Evaluator,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[assertionType]; exists {
		return fmt.Errorf(
			"assertion type already registered: %s",
			assertionType,
		)
	}

	e.evaluators[assertionType] = evaluator
	return nil
}

// Evaluate runs a single assertion against the provided value.
func (e *DefaultEngine) Evaluate(
	assertion Definition,
	value any,
) Result {
	e.mu.RLock()
	evaluator, exists := e.evaluators[assertion.Type]
	e.mu.RUnlock()

	if !exists {
		e.logger.Warn("unknown assertion type",
			logging.AssertionField(assertion.Type))
		return Result{
			Type:   assertion.Type,
			Target: assertion.Target,
			Passed: false,
			Message: fmt.Sprintf(
				"unknown assertion type: %s",
				assertion.Type,
			),
		}
	}

	passed, message := evaluator(assertion, value)

	e.logger.Debug("assertion evaluated",
		logging.AssertionField(assertion.Type),
		logging.StringField("target", assertion.Target),
		logging.BoolField("passed", passed),
	)

	return Result{
		Type:     assertion.Type,
		Target:   assertion.Target,
		Expected: assertion.Values,
		Actual:   value,
		Passed:   passed,
		Message:  message,
	}
}

// EvaluateAll runs multiple assertions against a map of named
// values. Each assertion's Target field is used as the key into
// the values map. If a target is missing, the assertion fails.
func (e *DefaultEngine) EvaluateAll(
	assertions []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(assertions))

	for _, a := range assertions {
		value, exists := values[a.Target]
		if !exists {
			results = append(results, Result{
				Type:     a.Type,
				Target:   a.Target,
				Expected: a.Values,
				Passed:   false,
				Message: fmt.Sprintf(
					"target not found: %s", a.Target,
				),
			})
			continue
		}

		results = append(results, e.Evaluate(a, value))
	}

	return results
}

// HasEvaluator returns true if the given assertion type has a
// registered evaluator.
func (e *DefaultEngine) HasEvaluator(
	assertionType string,
) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[assertionType]
	return exists
}

// Types returns the registered assertion types in sorted order.
func (e *DefaultEngine) Types() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	types := make([]string, 0, len(e.evaluators))
	for t := range e.evaluators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
