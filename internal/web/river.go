package web

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"github.com/jusunglee/baybayin/internal/db"
)

// NewRiverClient migrates the River schema and builds a client for the
// document queue. With maxWorkers > 0 the client also works conversion jobs
// and is started; otherwise it can only insert them and the caller must not
// start it.
func NewRiverClient(ctx context.Context, pool *pgxpool.Pool, repo db.Repository, log *slog.Logger, maxWorkers int) (*river.Client[pgx.Tx], error) {
	riverDriver := riverpgxv5.New(pool)

	migrator, err := rivermigrate.New(riverDriver, nil)
	if err != nil {
		return nil, fmt.Errorf("creating river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return nil, fmt.Errorf("running river migrations: %w", err)
	}

	cfg := &river.Config{Logger: log}
	if maxWorkers > 0 {
		workers := river.NewWorkers()
		river.AddWorker(workers, NewConvertWorker(NewDocumentConverter(repo, log)))
		cfg.Workers = workers
		cfg.Queues = map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		}
	}

	riverClient, err := river.NewClient(riverDriver, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating river client: %w", err)
	}
	if maxWorkers > 0 {
		if err := riverClient.Start(ctx); err != nil {
			return nil, fmt.Errorf("starting river client: %w", err)
		}
	}
	return riverClient, nil
}
