package infra

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// SQLExecutor abstracts query execution so repositories can run against a
// pool, a transaction, or a stub in tests.
type SQLExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var sqlMarkerRe = regexp.MustCompile(`--sql\s+([0-9a-f-]{36})`)

// SQLRunner executes inline SQL statements and logs each execution under the
// statement's --sql marker so slow or failing queries can be traced back to
// their source.
type SQLRunner struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSQLRunner creates a SQLRunner over the given pool.
func NewSQLRunner(pool *pgxpool.Pool, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{pool: pool, logger: logger.With().Str("component", "sqlrunner").Logger()}
}

func extractMarker(sql string) string {
	if m := sqlMarkerRe.FindStringSubmatch(sql); len(m) == 2 {
		return m[1]
	}
	return "unmarked"
}

// Exec runs a statement that returns no rows.
func (r *SQLRunner) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	marker := extractMarker(sql)
	start := time.Now()
	tag, err := r.pool.Exec(ctx, sql, args...)
	r.observe(marker, start, err)
	return tag, err
}

// QueryRow runs a statement expected to return a single row.
func (r *SQLRunner) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	marker := extractMarker(sql)
	start := time.Now()
	row := r.pool.QueryRow(ctx, sql, args...)
	return &loggingRow{row: row, runner: r, marker: marker, start: start}
}

// Query runs a statement expected to return multiple rows.
func (r *SQLRunner) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	marker := extractMarker(sql)
	start := time.Now()
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.observe(marker, start, err)
		return nil, err
	}
	return &loggingRows{Rows: rows, runner: r, marker: marker, start: start}, nil
}

func (r *SQLRunner) observe(marker string, start time.Time, err error) {
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Error().Err(err).Str("sql", marker).Dur("elapsed", elapsed).Msg("query failed")
		return
	}
	r.logger.Debug().Str("sql", marker).Dur("elapsed", elapsed).Msg("query ok")
}

type loggingRow struct {
	row    pgx.Row
	runner *SQLRunner
	marker string
	start  time.Time
}

func (l *loggingRow) Scan(dest ...any) error {
	err := l.row.Scan(dest...)
	if err != nil && err != pgx.ErrNoRows {
		l.runner.observe(l.marker, l.start, err)
	} else {
		l.runner.observe(l.marker, l.start, nil)
	}
	return err
}

type loggingRows struct {
	pgx.Rows
	runner *SQLRunner
	marker string
	start  time.Time
	done   bool
}

func (l *loggingRows) Close() {
	l.Rows.Close()
	if !l.done {
		l.done = true
		l.runner.observe(l.marker, l.start, l.Rows.Err())
	}
}

var _ SQLExecutor = (*SQLRunner)(nil)

// ErrorRow is a pgx.Row that always fails with the supplied error. It lets
// stub executors in tests surface failures through the Scan path.
type ErrorRow struct {
	Err error
}

// Scan implements pgx.Row.
func (e ErrorRow) Scan(dest ...any) error {
	if e.Err == nil {
		return fmt.Errorf("no row")
	}
	return e.Err
}
