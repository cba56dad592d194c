package web

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/jobs"
)

type ConvertWorker struct {
	river.WorkerDefaults[jobs.ConvertDocumentArgs]
	converter *DocumentConverter
}

func NewConvertWorker(converter *DocumentConverter) *ConvertWorker {
	return &ConvertWorker{converter: converter}
}

func (w *ConvertWorker) Work(ctx context.Context, job *river.Job[jobs.ConvertDocumentArgs]) error {
	err := w.converter.Convert(ctx, job.Args.DocumentID)
	if db.IsNoRows(err) {
		// The document is gone; retrying will not bring it back.
		return river.JobCancel(err)
	}
	return err
}
