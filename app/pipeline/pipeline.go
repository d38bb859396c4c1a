package pipeline

import (
	"context"
	"log/slog"

	"github.com/intentradar/intent-radar/app/database"
	"github.com/intentradar/intent-radar/app/signal"
)

// Pipeline processes raw feed items one at a time: detect company,
// classify, build the record, filter by score, upsert. Items carry no
// cross-item state, so any failure stays contained to its item.
type Pipeline struct {
	detector   *signal.Detector
	classifier *signal.Classifier
	builder    *signal.Builder
	repo       database.SignalRepositoryInterface
	minScore   int
}

func New(detector *signal.Detector, classifier *signal.Classifier, builder *signal.Builder,
	repo database.SignalRepositoryInterface, minScore int) *Pipeline {
	return &Pipeline{
		detector:   detector,
		classifier: classifier,
		builder:    builder,
		repo:       repo,
		minScore:   minScore,
	}
}

func (p *Pipeline) ProcessItem(ctx context.Context, item signal.RawItem) Outcome {
	company := p.detector.Run(item.CompanyHint, item.Title, item.Summary)
	categories, score := p.classifier.Run(item.Title, item.Summary)

	record, err := p.builder.Run(item, company, categories, score)
	if err != nil {
		// The builder only fails when the item has no dedup identity.
		// Upserting with an empty url would collide unrelated items.
		slog.Warn("Item rejected", "company", company, "title", item.Title, "error", err)
		return Outcome{Status: StatusRejected, Company: company, Score: score, Err: err}
	}

	if record.Score < p.minScore {
		slog.Debug("Item below score threshold, dropped",
			"company", company, "url", record.URL, "score", record.Score)
		return Outcome{Status: StatusSkipped, URL: record.URL, Company: company, Score: record.Score}
	}

	if err := p.repo.UpsertSignal(ctx, record); err != nil {
		slog.Error("Failed to store signal",
			"company", company, "url", record.URL, "error", err)
		return Outcome{Status: StatusFailed, URL: record.URL, Company: company, Score: record.Score, Err: err}
	}

	return Outcome{Status: StatusStored, URL: record.URL, Company: company, Score: record.Score}
}

// Run processes items sequentially. A failed write for one item never
// aborts the rest of the batch.
func (p *Pipeline) Run(ctx context.Context, items []signal.RawItem) Summary {
	var summary Summary

	for _, item := range items {
		outcome := p.ProcessItem(ctx, item)
		summary.Total++

		switch outcome.Status {
		case StatusStored:
			summary.Stored++
		case StatusSkipped:
			summary.Skipped++
		case StatusRejected:
			summary.Rejected++
		case StatusFailed:
			summary.Failed++
		}
	}

	return summary
}
