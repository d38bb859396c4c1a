package signal

import (
	"regexp"
)

// UnknownCompany is the fallback when no candidate matches the item text.
const UnknownCompany = "Unknown"

type candidate struct {
	name    string
	pattern *regexp.Regexp
}

// Detector resolves which watched company an item refers to. Candidates
// are compiled once; names are treated as literal text, so names with
// regex-special characters ("K+S", "Mercedes-Benz") match verbatim.
type Detector struct {
	candidates []candidate
}

func NewDetector(names []string) *Detector {
	candidates := make([]candidate, 0, len(names))
	for _, name := range names {
		// The folded name must appear as a delimited word or phrase,
		// not as a substring of a longer word.
		pattern := regexp.MustCompile(`(^|\W)` + regexp.QuoteMeta(fold(name)) + `(\W|$)`)
		candidates = append(candidates, candidate{name: name, pattern: pattern})
	}
	return &Detector{candidates: candidates}
}

// Run returns the hint unchanged when present. Otherwise the first
// candidate (in configured order) found in the title+summary text wins;
// overlapping names are resolved by list order, not longest match.
func (d *Detector) Run(hint, title, summary string) string {
	if hint != "" {
		return hint
	}

	haystack := fold(title + " " + summary)
	for _, c := range d.candidates {
		if c.pattern.MatchString(haystack) {
			return c.name
		}
	}

	return UnknownCompany
}

func (d *Detector) Candidates() []string {
	names := make([]string, 0, len(d.candidates))
	for _, c := range d.candidates {
		names = append(names, c.name)
	}
	return names
}
