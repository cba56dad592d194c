package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/jobs"
	"github.com/jusunglee/baybayin/internal/metrics"
	"github.com/jusunglee/baybayin/internal/pipeline"
)

// DocumentConverter runs stored documents through the pipeline and records
// the result, together with a conversion log entry, in one transaction.
type DocumentConverter struct {
	repo db.Repository
	log  *slog.Logger
}

func NewDocumentConverter(repo db.Repository, log *slog.Logger) *DocumentConverter {
	return &DocumentConverter{repo: repo, log: log}
}

// errBadOptions marks documents whose stored options no longer parse.
// Retrying cannot fix them.
var errBadOptions = errors.New("invalid document options")

// Convert processes the document with the given id. Documents that are no
// longer pending are left untouched, so a retried job is harmless.
func (c *DocumentConverter) Convert(ctx context.Context, id int64) error {
	start := time.Now()
	defer func() { metrics.DocumentJobDuration.Observe(time.Since(start).Seconds()) }()

	doc, err := c.repo.GetDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("loading document %d: %w", id, err)
	}
	if doc.Status != db.DocumentPending {
		c.log.DebugContext(ctx, "document already processed", "document_id", id, "status", doc.Status)
		return nil
	}

	conv, err := converterFor(doc)
	if err != nil {
		metrics.DocumentJobs.WithLabelValues("failed").Inc()
		_, updateErr := c.repo.UpdateDocument(ctx, db.UpdateDocumentParams{
			ID:     id,
			Status: db.DocumentFailed,
			Error:  sql.NullString{String: err.Error(), Valid: true},
		})
		if updateErr != nil {
			return fmt.Errorf("marking document %d failed: %w", id, updateErr)
		}
		c.log.WarnContext(ctx, "document failed", "document_id", id, "error", err)
		return nil
	}

	output := conv.Text(doc.Input)

	err = c.repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.UpdateDocument(ctx, db.UpdateDocumentParams{
			ID:     id,
			Status: db.DocumentDone,
			Output: sql.NullString{String: output, Valid: true},
		}); err != nil {
			return err
		}
		_, err := tx.SaveConversion(ctx, db.SaveConversionParams{
			Mode:    doc.Mode,
			Options: doc.Options,
			Input:   doc.Input,
			Output:  output,
		})
		return err
	})
	if err != nil {
		metrics.DocumentJobs.WithLabelValues("error").Inc()
		return fmt.Errorf("storing document %d: %w", id, err)
	}

	metrics.DocumentJobs.WithLabelValues("success").Inc()
	c.log.InfoContext(ctx, "document converted", "document_id", id, "mode", doc.Mode, "bytes", len(doc.Input))
	return nil
}

func converterFor(doc db.Document) (pipeline.Converter, error) {
	mode, err := pipeline.ParseMode(doc.Mode)
	if err != nil {
		return pipeline.Converter{}, fmt.Errorf("%w: %w", errBadOptions, err)
	}
	var sel pipeline.Selectors
	if err := json.Unmarshal([]byte(doc.Options), &sel); err != nil {
		return pipeline.Converter{}, fmt.Errorf("%w: %w", errBadOptions, err)
	}
	conv, err := pipeline.New(mode, sel)
	if err != nil {
		return pipeline.Converter{}, fmt.Errorf("%w: %w", errBadOptions, err)
	}
	return conv, nil
}

// RiverEnqueuer hands documents to the River queue on Postgres.
type RiverEnqueuer struct {
	client *river.Client[pgx.Tx]
}

func NewRiverEnqueuer(client *river.Client[pgx.Tx]) *RiverEnqueuer {
	return &RiverEnqueuer{client: client}
}

func (e *RiverEnqueuer) EnqueueConversion(ctx context.Context, documentID int64) error {
	_, err := e.client.Insert(ctx, jobs.ConvertDocumentArgs{DocumentID: documentID}, nil)
	return err
}

// InlineEnqueuer converts documents before the request returns. It serves
// backends without a job queue, such as SQLite.
type InlineEnqueuer struct {
	converter *DocumentConverter
}

func NewInlineEnqueuer(converter *DocumentConverter) *InlineEnqueuer {
	return &InlineEnqueuer{converter: converter}
}

func (e *InlineEnqueuer) EnqueueConversion(ctx context.Context, documentID int64) error {
	return e.converter.Convert(ctx, documentID)
}
