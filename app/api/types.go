package api

import (
	"time"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type StatsResponse struct {
	Signals    int                   `json:"signals"`
	Companies  int                   `json:"companies"`
	PerCompany []CompanyStatResponse `json:"per_company"`
}

type CompanyStatResponse struct {
	Company  string     `json:"company"`
	Signals  int        `json:"signals"`
	MaxScore int        `json:"max_score"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

type SignalResponse struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	SignalType  string     `json:"signal_type"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at"`
	Source      string     `json:"source"`
	Score       int        `json:"score"`
	CreatedAt   time.Time  `json:"created_at"`
}
