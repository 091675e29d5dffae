package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingDB captures the last statement sent to it and answers with canned results.
type recordingDB struct {
	sql  string
	args []any

	rowErr error
	tag    pgconn.CommandTag
}

func (d *recordingDB) record(sql string, args []any) {
	d.sql = sql
	d.args = args
}

func (d *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.record(sql, args)
	return d.tag, nil
}

func (d *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.record(sql, args)
	return nil, errQueryUnsupported
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.record(sql, args)
	err := d.rowErr
	if err == nil {
		err = pgx.ErrNoRows
	}
	return errRow{err: err}
}

var errQueryUnsupported = errors.New("query not supported by recordingDB")

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503"}
}
