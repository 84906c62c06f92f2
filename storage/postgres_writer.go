package storage

import (
	"context"
	"fmt"
	"time"

	"vectra-e2e/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWriter keeps a history of scenario runs so price and phone
// changes on the site can be tracked across runs.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(ctx context.Context, dsn string) (*PostgresWriter, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS e2e_runs (
		id BIGSERIAL PRIMARY KEY,
		base_url TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL,
		failed BOOLEAN NOT NULL,
		expected_phone TEXT NOT NULL,
		expected_phone_found BOOLEAN NOT NULL,
		highest_price NUMERIC(12,2),
		lowest_price NUMERIC(12,2)
	);

	CREATE TABLE IF NOT EXISTS e2e_steps (
		run_id BIGINT NOT NULL REFERENCES e2e_runs(id) ON DELETE CASCADE,
		position INT NOT NULL,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		attempts INT NOT NULL,
		duration_ms BIGINT NOT NULL,
		error TEXT,
		PRIMARY KEY (run_id, position)
	);

	CREATE TABLE IF NOT EXISTS e2e_price_samples (
		run_id BIGINT NOT NULL REFERENCES e2e_runs(id) ON DELETE CASCADE,
		position INT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE TABLE IF NOT EXISTS e2e_phone_numbers (
		run_id BIGINT NOT NULL REFERENCES e2e_runs(id) ON DELETE CASCADE,
		number CHAR(9) NOT NULL,
		PRIMARY KEY (run_id, number)
	);

	CREATE INDEX IF NOT EXISTS idx_e2e_runs_started_at ON e2e_runs(started_at);
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

// WriteRun stores run with its steps, price samples and phone numbers in
// one transaction and returns the new run id.
func (w *PostgresWriter) WriteRun(ctx context.Context, run models.RunResult) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var highest, lowest *float64
	if run.Prices != nil {
		highest, lowest = &run.Prices.Highest, &run.Prices.Lowest
	}

	var runID int64
	err = tx.QueryRow(ctx, `
	INSERT INTO e2e_runs (base_url, started_at, finished_at, failed, expected_phone, expected_phone_found, highest_price, lowest_price)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id;
	`,
		run.BaseURL,
		run.StartedAt,
		run.FinishedAt,
		run.Failed(),
		run.ExpectedPhone,
		run.Phones.Contains(run.ExpectedPhone),
		highest,
		lowest,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	batch := runBatch(runID, run)
	if batch.Len() > 0 {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return 0, fmt.Errorf("batch insert failed at row %d: %w", i, err)
			}
		}
		if err := results.Close(); err != nil {
			return 0, fmt.Errorf("close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

func runBatch(runID int64, run models.RunResult) *pgx.Batch {
	batch := &pgx.Batch{}

	for i, s := range run.Steps {
		var errText *string
		if s.Err != nil {
			msg := s.ErrorText()
			errText = &msg
		}
		batch.Queue(`
		INSERT INTO e2e_steps (run_id, position, name, status, attempts, duration_ms, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, runID, i, s.Name, string(s.Status), s.Attempts, s.Duration.Milliseconds(), errText)
	}

	if run.Prices != nil {
		for i, price := range run.Prices.Samples {
			batch.Queue(`
			INSERT INTO e2e_price_samples (run_id, position, price) VALUES ($1, $2, $3);
			`, runID, i, price)
		}
	}

	for _, number := range run.Phones.Sorted() {
		batch.Queue(`
		INSERT INTO e2e_phone_numbers (run_id, number) VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
		`, runID, number)
	}

	return batch
}
