package types

// Change records how many times a single rule fired in one file.
type Change struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// FileResult is the outcome of rewriting one file. It is created by the
// engine and only read afterwards; the reporter never mutates it.
//
// Err is a string rather than an error so results stay marshalable for
// JSON output. An empty string means the file was processed cleanly.
type FileResult struct {
	Path         string   `json:"path"`
	Changes      []Change `json:"changes,omitempty"`
	ImportsAdded []string `json:"imports_added,omitempty"`
	Modified     bool     `json:"modified"`
	Err          string   `json:"error,omitempty"`
}

// TotalChanges sums the per-rule counts for this file.
func (r FileResult) TotalChanges() int {
	total := 0
	for _, c := range r.Changes {
		total += c.Count
	}
	return total
}

// RuleConfig is the YAML representation of a single rewrite rule.
type RuleConfig struct {
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Import      string `yaml:"import"`
}
