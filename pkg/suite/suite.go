// Package suite loads assertion suites from YAML or JSON files and
// runs them through an assertion engine.
package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.assertions/pkg/assertion"
)

// File is the on-disk structure of an assertion suite. JSON is
// read through the YAML decoder, so both formats share the yaml
// tags.
type File struct {
	Version string `yaml:"version" json:"version"`
	Name    string `yaml:"name" json:"name"`

	// Assertions are fully spelled-out definitions.
	Assertions []assertion.Definition `yaml:"assertions" json:"assertions"`

	// Shorthand maps a target to compact assertion strings such
	// as "contains_sequence:Luke,Leia".
	Shorthand map[string][]string `yaml:"shorthand,omitempty" json:"shorthand,omitempty"`

	// Values are the named values the assertions check.
	Values map[string]any `yaml:"values" json:"values"`

	// Source is the path the file was loaded from.
	Source string `yaml:"-" json:"-"`
}

// LoadFile reads a suite from a .yaml, .yml or .json file.
func LoadFile(path string) (*File, error) {
	if !supported(path) {
		return nil, fmt.Errorf(
			"unsupported suite file extension: %s", path,
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file %s: %w", path, err,
		)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite file %s: %w", path, err,
		)
	}
	f.Source = path
	return f, nil
}

// LoadDir loads every suite file in dir. It does not recurse into
// subdirectories. Files are returned in name order.
func LoadDir(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var files []*File
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}

		f, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

// Parse decodes a suite from YAML or JSON bytes and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	f.normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every assertion names a type and a target.
func (f *File) Validate() error {
	for i, a := range f.Assertions {
		if a.Type == "" {
			return fmt.Errorf("assertion %d has no type", i)
		}
		if a.Target == "" {
			return fmt.Errorf(
				"assertion %d (%s) has no target", i, a.Type,
			)
		}
	}
	for target, checks := range f.Shorthand {
		for _, c := range checks {
			if typ, _ := assertion.ParseAssertionString(c); typ == "" {
				return fmt.Errorf(
					"shorthand %q for target %s has no type",
					c, target,
				)
			}
		}
	}
	return nil
}

// Definitions returns the suite's assertions followed by its
// expanded shorthand, with shorthand targets in sorted order.
func (f *File) Definitions() []assertion.Definition {
	defs := make([]assertion.Definition, 0, len(f.Assertions))
	defs = append(defs, f.Assertions...)

	targets := make([]string, 0, len(f.Shorthand))
	for target := range f.Shorthand {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		for _, c := range f.Shorthand[target] {
			defs = append(defs, assertion.ParseDefinition(target, c))
		}
	}
	return defs
}

// Run evaluates the suite with engine.
func Run(engine assertion.Engine, f *File) []assertion.Result {
	return engine.EvaluateAll(f.Definitions(), f.Values)
}

// Failed returns the results that did not pass.
func Failed(results []assertion.Result) []assertion.Result {
	var failed []assertion.Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// normalize rewrites maps decoded with non-string keys, such as
// {1: Yoda}, into map[string]any so results stay JSON-encodable.
func (f *File) normalize() {
	for k, v := range f.Values {
		f.Values[k] = normalizeValue(v)
	}
	for i := range f.Assertions {
		for j, v := range f.Assertions[i].Values {
			f.Assertions[i].Values[j] = normalizeValue(v)
		}
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[fmt.Sprint(k)] = normalizeValue(e)
		}
		return m
	case map[string]any:
		for k, e := range val {
			val[k] = normalizeValue(e)
		}
		return val
	case []any:
		for i, e := range val {
			val[i] = normalizeValue(e)
		}
		return val
	}
	return v
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
