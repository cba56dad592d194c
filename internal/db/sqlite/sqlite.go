package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jusunglee/baybayin/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  dbtx
}

// New opens (or creates) the SQLite database at dbPath and applies the
// schema. ":memory:" gives a private in-memory database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" a single database.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	slog.Debug("opened SQLite database", "path", dbPath)

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	if _, ok := r.q.(*sql.Tx); ok {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Conversion log

func (r *Repository) SaveConversion(ctx context.Context, arg db.SaveConversionParams) (db.Conversion, error) {
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO conversions (mode, options, input, output)
		VALUES (?, ?, ?, ?)
	`, arg.Mode, arg.Options, arg.Input, arg.Output)
	if err != nil {
		return db.Conversion{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Conversion{}, err
	}

	return scanConversion(r.q.QueryRowContext(ctx, `
		SELECT id, mode, options, input, output, created_at
		FROM conversions
		WHERE id = ?
	`, id))
}

func (r *Repository) ListConversions(ctx context.Context, arg db.ListConversionsParams) ([]db.Conversion, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, mode, options, input, output, created_at
		FROM conversions
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []db.Conversion
	for rows.Next() {
		var c db.Conversion
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.Mode, &c.Options, &c.Input, &c.Output, &createdAtStr); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}

func (r *Repository) CountConversions(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&count)
	return count, err
}

// Documents

func (r *Repository) CreateDocument(ctx context.Context, arg db.CreateDocumentParams) (db.Document, error) {
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO documents (mode, options, input, status)
		VALUES (?, ?, ?, ?)
	`, arg.Mode, arg.Options, arg.Input, db.DocumentPending)
	if err != nil {
		return db.Document{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Document{}, err
	}
	return r.GetDocument(ctx, id)
}

func (r *Repository) GetDocument(ctx context.Context, id int64) (db.Document, error) {
	return scanDocument(r.q.QueryRowContext(ctx, `
		SELECT id, mode, options, input, output, status, error, created_at, updated_at
		FROM documents
		WHERE id = ?
	`, id))
}

func (r *Repository) UpdateDocument(ctx context.Context, arg db.UpdateDocumentParams) (db.Document, error) {
	result, err := r.q.ExecContext(ctx, `
		UPDATE documents
		SET status = ?, output = ?, error = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE id = ?
	`, arg.Status, nullString(arg.Output), nullString(arg.Error), arg.ID)
	if err != nil {
		return db.Document{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return db.Document{}, err
	}
	if rowsAffected == 0 {
		return db.Document{}, db.ErrNoRows
	}
	return r.GetDocument(ctx, arg.ID)
}

// Scan helpers

func scanConversion(row *sql.Row) (db.Conversion, error) {
	var c db.Conversion
	var createdAtStr string
	err := row.Scan(&c.ID, &c.Mode, &c.Options, &c.Input, &c.Output, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.Conversion{}, db.ErrNoRows
	}
	if err != nil {
		return db.Conversion{}, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return c, nil
}

func scanDocument(row *sql.Row) (db.Document, error) {
	var d db.Document
	var status, createdAtStr, updatedAtStr string
	err := row.Scan(&d.ID, &d.Mode, &d.Options, &d.Input, &d.Output, &status, &d.Error, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return db.Document{}, db.ErrNoRows
	}
	if err != nil {
		return db.Document{}, err
	}
	d.Status = db.DocumentStatus(status)
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return d, nil
}

func nullString(s sql.NullString) any {
	if s.Valid {
		return s.String
	}
	return nil
}
