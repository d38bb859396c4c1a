package pipeline

// Status classifies the fate of one processed item. Skipped items are a
// deliberate no-signal outcome, not an error.
type Status string

const (
	StatusStored   Status = "stored"
	StatusSkipped  Status = "skipped"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

// Outcome is the per-item processing result.
type Outcome struct {
	Status  Status
	URL     string
	Company string
	Score   int
	Err     error
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	Total    int
	Stored   int
	Skipped  int
	Rejected int
	Failed   int
}
