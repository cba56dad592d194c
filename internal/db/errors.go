package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned by every Repository when a lookup matches nothing.
var ErrNoRows = errors.New("no rows in result set")

// IsNoRows reports whether err means a lookup matched nothing, whether it
// came from this package, database/sql or pgx.
func IsNoRows(err error) bool {
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}
