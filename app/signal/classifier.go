package signal

import (
	"strings"
)

// Classifier matches keyword rules against item text. Matching is plain
// case-insensitive substring containment, same as feed content filtering.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Run returns the matched categories in rule declaration order and the
// total score. Each rule's points count at most once per item, no matter
// how many of its keywords occur in the text.
func (c *Classifier) Run(title, summary string) ([]string, int) {
	haystack := fold(title + " " + summary)

	var categories []string
	score := 0

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(haystack, fold(keyword)) {
				categories = append(categories, rule.Category)
				score += rule.Points
				break
			}
		}
	}

	return categories, score
}

func (c *Classifier) Rules() []Rule {
	return c.rules
}
