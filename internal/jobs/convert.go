package jobs

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ConvertDocumentArgs are the arguments for a convert_document job.
type ConvertDocumentArgs struct {
	DocumentID int64 `json:"document_id"`
}

func (ConvertDocumentArgs) Kind() string { return "convert_document" }

func (args ConvertDocumentArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
		MaxAttempts: 3,
	}
}
