package suite

import (
	"encoding/json"
	"io"

	"digital.vasic.assertions/pkg/assertion"
)

// Report summarises the results of running one suite.
type Report struct {
	Name    string             `json:"name"`
	Source  string             `json:"source,omitempty"`
	Total   int                `json:"total"`
	Passed  int                `json:"passed"`
	Failed  int                `json:"failed"`
	Results []assertion.Result `json:"results"`
}

// NewReport builds a Report for f from its results.
func NewReport(f *File, results []assertion.Result) Report {
	r := Report{
		Name:    f.Name,
		Source:  f.Source,
		Total:   len(results),
		Results: results,
	}
	for _, res := range results {
		if res.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	return r
}

// OK reports whether every assertion passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// WriteJSON writes the report as JSON. When pretty is true, output
// is indented for readability.
func (r Report) WriteJSON(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}
