package signal

import (
	"golang.org/x/text/cases"
)

// fold case-folds text for case-insensitive matching. All haystacks and
// needles go through the same folding so comparisons stay symmetric.
// A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// DefaultRules returns the reference rule set used when the watch
// configuration does not define its own signals.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "hiring", Points: 1, Keywords: []string{
			"hiring", "recruitment", "job opening", "job openings", "new positions", "headcount"}},
		{Category: "product_launch", Points: 3, Keywords: []string{
			"launch", "launches", "unveils", "introduces", "new product", "rollout"}},
		{Category: "partnership", Points: 3, Keywords: []string{
			"partnership", "partners with", "collaboration", "joint venture", "teams up", "alliance"}},
		{Category: "capacity", Points: 2, Keywords: []string{
			"new plant", "new factory", "expansion", "expands", "capacity", "production site"}},
		{Category: "event", Points: 2, Keywords: []string{
			"trade show", "trade fair", "conference", "expo", "exhibition", "keynote"}},
		{Category: "mna", Points: 3, Keywords: []string{
			"acquisition", "acquires", "merger", "takeover", "buyout"}},
		{Category: "automation", Points: 1, Keywords: []string{
			"automation", "robotics", "digitalization", "industry 4.0"}},
	}
}
