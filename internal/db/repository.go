package db

import (
	"context"
	"database/sql"
	"time"
)

// Conversion is one entry of the conversion log.
type Conversion struct {
	ID        int64
	Mode      string
	Options   string
	Input     string
	Output    string
	CreatedAt time.Time
}

type SaveConversionParams struct {
	Mode    string
	Options string
	Input   string
	Output  string
}

type ListConversionsParams struct {
	Limit  int32
	Offset int32
}

type DocumentStatus string

const (
	DocumentPending DocumentStatus = "pending"
	DocumentDone    DocumentStatus = "done"
	DocumentFailed  DocumentStatus = "failed"
)

// Document is a text submitted for asynchronous conversion.
type Document struct {
	ID        int64
	Mode      string
	Options   string
	Input     string
	Output    sql.NullString
	Status    DocumentStatus
	Error     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateDocumentParams struct {
	Mode    string
	Options string
	Input   string
}

type UpdateDocumentParams struct {
	ID     int64
	Status DocumentStatus
	Output sql.NullString
	Error  sql.NullString
}

// Repository defines the interface for database operations
type Repository interface {
	// Conversion log
	SaveConversion(ctx context.Context, arg SaveConversionParams) (Conversion, error)
	ListConversions(ctx context.Context, arg ListConversionsParams) ([]Conversion, error)
	CountConversions(ctx context.Context) (int64, error)

	// Documents
	CreateDocument(ctx context.Context, arg CreateDocumentParams) (Document, error)
	GetDocument(ctx context.Context, id int64) (Document, error)
	UpdateDocument(ctx context.Context, arg UpdateDocumentParams) (Document, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}
