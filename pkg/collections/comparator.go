package collections

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Comparator decides whether two elements are equal.
type Comparator interface {
	AreEqual(actual, other any) bool
}

// StandardComparator compares values structurally with go-cmp,
// including unexported struct fields. Pointers are equal when the
// values they point to are equal.
type StandardComparator struct {
	opts []cmp.Option
}

// NewStandardComparator creates a StandardComparator. Extra
// options are applied after the defaults.
func NewStandardComparator(opts ...cmp.Option) StandardComparator {
	all := []cmp.Option{
		cmp.Exporter(func(reflect.Type) bool { return true }),
	}
	return StandardComparator{opts: append(all, opts...)}
}

// AreEqual implements Comparator.
func (c StandardComparator) AreEqual(actual, other any) bool {
	return cmp.Equal(actual, other, c.opts...)
}
