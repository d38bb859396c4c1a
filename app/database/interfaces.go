package database

import (
	"context"

	"github.com/intentradar/intent-radar/app/signal"
)

// SignalRepositoryInterface defines storage operations for intent signals.
// UpsertSignal keys on url: a second write with the same url overwrites
// every column of the existing row with the incoming values.
type SignalRepositoryInterface interface {
	UpsertSignal(ctx context.Context, record signal.Record) error
	GetSignals(ctx context.Context, company string, limit int) ([]Signal, error)
	GetSignalCount(ctx context.Context) (int, error)
	GetCompanyStats(ctx context.Context) ([]CompanyStat, error)
}
