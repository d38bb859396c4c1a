package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/intentradar/intent-radar/app/signal"
)

// SignalRepository handles database operations for intent signals
type SignalRepository struct {
	db *DB
}

// NewSignalRepository creates a new signal repository
func NewSignalRepository(db *DB) *SignalRepository {
	return &SignalRepository{db: db}
}

// UpsertSignal inserts a signal or overwrites the existing row sharing
// the same url (last-write-wins per column).
func (r *SignalRepository) UpsertSignal(ctx context.Context, record signal.Record) error {
	raw, err := json.Marshal(record.Raw)
	if err != nil {
		return fmt.Errorf("failed to encode raw payload: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO intent_signals (
			company, signal_type, title, url, published_at, source, score, raw
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO UPDATE SET
			company = EXCLUDED.company,
			signal_type = EXCLUDED.signal_type,
			title = EXCLUDED.title,
			published_at = EXCLUDED.published_at,
			source = EXCLUDED.source,
			score = EXCLUDED.score,
			raw = EXCLUDED.raw
	`, record.Company, record.SignalType, record.Title, record.URL,
		record.PublishedAt, record.Source, record.Score, raw)

	if err != nil {
		return fmt.Errorf("failed to upsert signal: %w", err)
	}

	return nil
}

// GetSignals returns stored signals, newest first, optionally filtered by company
func (r *SignalRepository) GetSignals(ctx context.Context, company string, limit int) ([]Signal, error) {
	query := `
		SELECT id, company, signal_type, COALESCE(title, ''), url,
		       published_at, source, score, COALESCE(raw, 'null'), created_at
		FROM intent_signals`
	args := []interface{}{}

	if company != "" {
		query += ` WHERE company = $1`
		args = append(args, company)
	}
	query += fmt.Sprintf(` ORDER BY COALESCE(published_at, created_at) DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get signals: %w", err)
	}
	defer rows.Close()

	var signals []Signal
	for rows.Next() {
		s, err := scanSignal(rows)
		if err != nil {
			return nil, err
		}
		signals = append(signals, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating signal rows: %w", err)
	}

	return signals, nil
}

// GetSignalCount returns the total number of stored signals
func (r *SignalRepository) GetSignalCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM intent_signals").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get signal count: %w", err)
	}
	return count, nil
}

// GetCompanyStats returns per-company signal counts and score aggregates
func (r *SignalRepository) GetCompanyStats(ctx context.Context) ([]CompanyStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT company, COUNT(*), MAX(score), MAX(COALESCE(published_at, created_at))
		FROM intent_signals
		GROUP BY company
		ORDER BY COUNT(*) DESC, company ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get company stats: %w", err)
	}
	defer rows.Close()

	var stats []CompanyStat
	for rows.Next() {
		var stat CompanyStat
		var lastSeen sql.NullTime
		if err := rows.Scan(&stat.Company, &stat.Signals, &stat.MaxScore, &lastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan company stat row: %w", err)
		}
		if lastSeen.Valid {
			stat.LastSeen = &lastSeen.Time
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company stat rows: %w", err)
	}

	return stats, nil
}

func scanSignal(rows *sql.Rows) (Signal, error) {
	var s Signal
	var publishedAt sql.NullTime
	var raw []byte

	err := rows.Scan(&s.ID, &s.Company, &s.SignalType, &s.Title, &s.URL,
		&publishedAt, &s.Source, &s.Score, &raw, &s.CreatedAt)
	if err != nil {
		return Signal{}, fmt.Errorf("failed to scan signal row: %w", err)
	}

	if publishedAt.Valid {
		s.PublishedAt = &publishedAt.Time
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.Raw); err != nil {
			return Signal{}, fmt.Errorf("failed to decode raw payload: %w", err)
		}
	}

	return s, nil
}
