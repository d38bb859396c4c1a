package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/intentradar/intent-radar/app/feed"
	"github.com/intentradar/intent-radar/app/pipeline"
)

// ScanCompanyTask fetches one company's news feed and runs every item
// through the ingestion pipeline. A failed fetch fails this company's
// scan only; other companies proceed independently.
type ScanCompanyTask struct {
	Task
	feedURL  string
	fetcher  *feed.Fetcher
	pipeline *pipeline.Pipeline
}

func NewScanCompanyTask(company, feedURL string, fetcher *feed.Fetcher, pipe *pipeline.Pipeline) *ScanCompanyTask {
	return &ScanCompanyTask{
		Task:     NewTask(TaskTypeScanCompany, company),
		feedURL:  feedURL,
		fetcher:  fetcher,
		pipeline: pipe,
	}
}

func (t *ScanCompanyTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	items, err := t.fetcher.Run(ctx, t.feedURL, t.Company)
	if err != nil {
		return fmt.Errorf("failed to fetch company feed: %w", err)
	}

	summary := t.pipeline.Run(ctx, items)

	slog.Info("Task completed",
		"type", "ScanCompany",
		"company", t.Company,
		"duration", t.GetDuration(),
		"total", summary.Total,
		"stored", summary.Stored,
		"skipped", summary.Skipped,
		"rejected", summary.Rejected,
		"failed", summary.Failed)

	return nil
}
