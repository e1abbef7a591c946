// Package dbmetrics wraps database/sql with query metrics and carries
// transactions through context so repositories stay transaction-agnostic.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/petsas/appointment-service/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on.
// Both *sql.DB and the metric-wrapped DB satisfy it.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor is a transaction with the same query surface.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// ContextWithTx returns ctx carrying the given transaction. Repositories
// resolve it back through GetExecutor.
func ContextWithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction carried by ctx, or fallback when the
// context holds none.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

// DB wraps *sql.DB and reports per-query metrics.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap wraps db with query metrics.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps db and starts a background goroutine publishing
// connection pool gauges every 15 seconds until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBPoolStats(dbName, stats.OpenConnections, stats.Idle, stats.InUse)
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// QueryRowContext runs a single-row query and records its duration.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), nil)
	return row
}

// QueryContext runs a multi-row query and records its duration.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

// ExecContext runs a statement and records its duration.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return res, err
}

// BeginTx starts a metric-wrapped transaction.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, metrics: d.metrics}, nil
}

type metricTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), nil)
	return row
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return res, err
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }

// queryOperation extracts the leading SQL verb for the operation label.
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
