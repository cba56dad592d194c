package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/metrics"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New connects to PostgreSQL and applies the schema.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

// Pool exposes the underlying pool for the job queue driver.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

// ExportPoolStats publishes pool stats as Prometheus gauges every interval
// until ctx is done.
func (r *Repository) ExportPoolStats(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := r.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	if _, ok := r.q.(pgx.Tx); ok {
		return fn(r)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// A panic in fn skips the rollback below and would leak the connection.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Repository{pool: r.pool, q: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Conversion log

const conversionColumns = `id, mode, options::text, input, output, created_at`

func (r *Repository) SaveConversion(ctx context.Context, arg db.SaveConversionParams) (db.Conversion, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO conversions (mode, options, input, output)
		VALUES ($1, $2::jsonb, $3, $4)
		RETURNING `+conversionColumns,
		arg.Mode, arg.Options, arg.Input, arg.Output)
	return scanConversion(row)
}

func (r *Repository) ListConversions(ctx context.Context, arg db.ListConversionsParams) ([]db.Conversion, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+conversionColumns+`
		FROM conversions
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []db.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}

func (r *Repository) CountConversions(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&count)
	return count, err
}

// Documents

const documentColumns = `id, mode, options::text, input, output, status, error, created_at, updated_at`

func (r *Repository) CreateDocument(ctx context.Context, arg db.CreateDocumentParams) (db.Document, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO documents (mode, options, input, status)
		VALUES ($1, $2::jsonb, $3, $4)
		RETURNING `+documentColumns,
		arg.Mode, arg.Options, arg.Input, string(db.DocumentPending))
	return scanDocument(row)
}

func (r *Repository) GetDocument(ctx context.Context, id int64) (db.Document, error) {
	row := r.q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)
	return scanDocument(row)
}

func (r *Repository) UpdateDocument(ctx context.Context, arg db.UpdateDocumentParams) (db.Document, error) {
	row := r.q.QueryRow(ctx, `
		UPDATE documents
		SET status = $2, output = $3, error = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+documentColumns,
		arg.ID, string(arg.Status), arg.Output, arg.Error)
	return scanDocument(row)
}

func scanConversion(row pgx.Row) (db.Conversion, error) {
	var c db.Conversion
	err := row.Scan(&c.ID, &c.Mode, &c.Options, &c.Input, &c.Output, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Conversion{}, db.ErrNoRows
	}
	return c, err
}

func scanDocument(row pgx.Row) (db.Document, error) {
	var d db.Document
	var status string
	err := row.Scan(&d.ID, &d.Mode, &d.Options, &d.Input, &d.Output, &status, &d.Error, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Document{}, db.ErrNoRows
	}
	if err != nil {
		return db.Document{}, err
	}
	d.Status = db.DocumentStatus(status)
	return d, nil
}
