package database

import (
	"time"
)

// Signal represents a stored intent signal row
type Signal struct {
	ID          string // Database UUID
	Company     string
	SignalType  string
	Title       string
	URL         string // Dedup identity, unique in the store
	PublishedAt *time.Time
	Source      string
	Score       int
	Raw         map[string]interface{}
	CreatedAt   time.Time
}

// CompanyStat aggregates stored signals per company
type CompanyStat struct {
	Company  string
	Signals  int
	MaxScore int
	LastSeen *time.Time
}
