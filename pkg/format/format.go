// Package format renders arbitrary values into the canonical text
// used inside assertion failure messages. Strings are single-quoted
// and lists are rendered as "[a, b, c]" in iteration order, so the
// same evidence always produces the same text.
//
// Maps and structs are rendered by go-spew with sorted keys. Their
// string fields appear unquoted, as in "{Name:Yoda Rank:1}"; only
// top-level strings and list elements are quoted.
package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// spewConfig renders composite values. Map keys are sorted and
// pointer addresses are hidden so the output does not depend on
// hashing or allocation.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                10,
}

// Null is the representation of an absent value.
const Null = "null"

// Truncated replaces lists nested deeper than spewConfig.MaxDepth.
const Truncated = "[...]"

// ToString returns the canonical representation of v.
func ToString(v any) string {
	return toString(v, 0)
}

func toString(v any, depth int) string {
	if v == nil {
		return Null
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Null
		}
	}

	switch val := v.(type) {
	case string:
		return Quote(val)
	case error:
		return callMethod(v, val.Error)
	case fmt.Stringer:
		return callMethod(v, val.String)
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return list(rv, depth)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v)
	case reflect.String:
		return Quote(rv.String())
	}

	return spewConfig.Sprintf("%+v", v)
}

// callMethod returns the result of an Error or String method. If the
// method panics, v is rendered by spew instead, which also recovers
// from panicking methods.
func callMethod(v any, method func() string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = spewConfig.Sprintf("%+v", v)
		}
	}()
	return method()
}

// Quote wraps s in single quotes.
func Quote(s string) string {
	return "'" + s + "'"
}

// List renders values as a bracketed, comma-separated list.
func List(values []any) string {
	return list(reflect.ValueOf(values), 0)
}

func list(rv reflect.Value, depth int) string {
	if depth >= spewConfig.MaxDepth {
		return Truncated
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(toString(rv.Index(i).Interface(), depth+1))
	}
	b.WriteByte(']')
	return b.String()
}
