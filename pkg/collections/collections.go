// Package collections implements assertions over ordered groups of
// values. Every check validates its arguments first, then reports
// an absent actual value, and only then compares elements.
package collections

import (
	"digital.vasic.assertions/pkg/errmsg"
	"digital.vasic.assertions/pkg/failure"
)

// Option configures Collections.
type Option func(*Collections)

// WithReporter sets the reporter that raises failures.
func WithReporter(r failure.Reporter) Option {
	return func(c *Collections) {
		c.failures = r
	}
}

// WithComparator sets how elements are compared.
func WithComparator(cmp Comparator) Option {
	return func(c *Collections) {
		c.comparator = cmp
	}
}

// Collections runs containment assertions. It holds no per-call
// state and is safe for concurrent use.
type Collections struct {
	failures   failure.Reporter
	comparator Comparator
}

var instance = New()

// Instance returns the shared Collections.
func Instance() *Collections {
	return instance
}

// New creates a Collections that reports through failure.Instance()
// and compares with a StandardComparator unless configured
// otherwise.
func New(opts ...Option) *Collections {
	c := &Collections{
		failures:   failure.Instance(),
		comparator: NewStandardComparator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AssertEmpty fails unless actual has no elements.
func (c *Collections) AssertEmpty(
	info failure.Info,
	actual []any,
) error {
	if actual == nil {
		return c.failures.Failure(info, errmsg.ShouldNotBeNull())
	}
	if len(actual) == 0 {
		return nil
	}
	return c.failures.Failure(info, errmsg.IsNotEmpty(actual))
}

// AssertNotEmpty fails if actual has no elements.
func (c *Collections) AssertNotEmpty(
	info failure.Info,
	actual []any,
) error {
	if actual == nil {
		return c.failures.Failure(info, errmsg.ShouldNotBeNull())
	}
	if len(actual) > 0 {
		return nil
	}
	return c.failures.Failure(info, errmsg.IsEmpty())
}

// AssertContains fails unless every one of values occurs in
// actual, in any order.
func (c *Collections) AssertContains(
	info failure.Info,
	actual, values []any,
) error {
	if err := failure.CheckValuesToLookFor("contains", values); err != nil {
		return err
	}
	if actual == nil {
		return c.failures.Failure(info, errmsg.ShouldNotBeNull())
	}

	notFound := c.distinctNotIn(values, actual)
	if len(notFound) == 0 {
		return nil
	}
	return c.failures.Failure(
		info, errmsg.DoesNotContain(actual, values, notFound),
	)
}

// AssertContainsOnly fails unless actual and values hold the same
// distinct elements. Duplicates on either side are ignored.
func (c *Collections) AssertContainsOnly(
	info failure.Info,
	actual, values []any,
) error {
	if err := failure.CheckValuesToLookFor("contains only", values); err != nil {
		return err
	}
	if actual == nil {
		return c.failures.Failure(info, errmsg.ShouldNotBeNull())
	}

	notFound := c.distinctNotIn(values, actual)
	unexpected := c.distinctNotIn(actual, values)
	if len(notFound) == 0 && len(unexpected) == 0 {
		return nil
	}
	return c.failures.Failure(info, errmsg.DoesNotContainExclusively(
		actual, values, unexpected, notFound,
	))
}

// AssertContainsSequence fails unless sequence occurs in actual as
// a contiguous run, in order.
func (c *Collections) AssertContainsSequence(
	info failure.Info,
	actual, sequence []any,
) error {
	if err := failure.CheckValuesToLookFor("contains sequence", sequence); err != nil {
		return err
	}
	if actual == nil {
		return c.failures.Failure(info, errmsg.ShouldNotBeNull())
	}

	if c.containsSequence(actual, sequence) {
		return nil
	}
	return c.failures.Failure(
		info, errmsg.DoesNotContainSequence(actual, sequence),
	)
}

// AssertDoesNotHaveDuplicates fails if any element of actual occurs
// more than once.
func (c *Collections) AssertDoesNotHaveDuplicates(
	info failure.Info,
	actual []any,
) error {
	if actual == nil {
		return c.failures.Failure(info, errmsg.ShouldNotBeNull())
	}

	duplicates := c.duplicatesOf(actual)
	if len(duplicates) == 0 {
		return nil
	}
	return c.failures.Failure(
		info, errmsg.HasDuplicates(actual, duplicates),
	)
}
