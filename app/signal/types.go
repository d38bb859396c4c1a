package signal

import (
	"time"
)

// RawItem is a single feed entry as delivered by the feed boundary.
// Raw preserves the complete original payload for reprocessing.
type RawItem struct {
	Title           string
	Summary         string
	Link            string
	GUID            string
	Published       string
	PublishedParsed *time.Time
	Updated         string
	UpdatedParsed   *time.Time
	CompanyHint     string
	Raw             map[string]interface{}
}

// Record is the normalized intent signal produced by the builder.
// Immutable once built; URL is the dedup identity in the store.
type Record struct {
	Company     string
	SignalType  string
	Title       string
	URL         string
	PublishedAt *time.Time
	Source      string
	Score       int
	Raw         map[string]interface{}
}

// Rule maps one signal category to its trigger keywords and point value.
// Rule declaration order defines the order categories appear in SignalType.
type Rule struct {
	Category string   `yaml:"category"`
	Points   int      `yaml:"points"`
	Keywords []string `yaml:"keywords"`
}
