// Package sqlite is the default relational backend, backed by the pure-Go
// modernc.org/sqlite driver over database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite3 "modernc.org/sqlite"

	"github.com/SamsaniMonish/ecomgen/internal/model"
	"github.com/SamsaniMonish/ecomgen/internal/report"
	"github.com/SamsaniMonish/ecomgen/internal/store"
)

// SQLite extended result codes for constraint failures.
const (
	codeForeignKey = 787
	codePrimaryKey = 1555
	codeUnique     = 2067
)

// Store runs one load or report cycle against a SQLite database file.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens (creating if absent) the database at path with foreign key
// enforcement on. The pipeline is single-threaded, so the pool is pinned to
// one connection; PRAGMA statements then apply to every later statement.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Load implements store.Store. The reset step makes re-running after a
// mid-load failure safe: everything is dropped and recreated from scratch.
func (s *Store) Load(ctx context.Context, ds *model.Dataset) (store.RowCounts, error) {
	if err := s.reset(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rows := range store.BindDataset(ds) {
		stmt, err := tx.PrepareContext(ctx, rows.Table.InsertSQL(store.DialectSQLite))
		if err != nil {
			return nil, fmt.Errorf("prepare insert into %s: %w", rows.Table.Name, err)
		}
		for i, bound := range rows.Args {
			if _, err := stmt.ExecContext(ctx, bound...); err != nil {
				stmt.Close()
				return nil, mapConstraintErr(rows.Table.Name, rows.Keys[i], err)
			}
		}
		stmt.Close()
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit load: %w", err)
	}

	return s.counts(ctx)
}

// reset drops the five tables children-first with enforcement off, then
// recreates them with their constraints.
func (s *Store) reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disable foreign keys: %w", err)
	}
	for _, name := range store.DropOrder() {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, t := range store.Tables() {
		if _, err := s.db.ExecContext(ctx, t.CreateSQL(store.DialectSQLite)); err != nil {
			return fmt.Errorf("create %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *Store) counts(ctx context.Context) (store.RowCounts, error) {
	counts := make(store.RowCounts, len(store.LoadOrder))
	for _, name := range store.LoadOrder {
		var n int64
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+name).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

// Report implements store.Store.
func (s *Store) Report(ctx context.Context, limit int) ([]report.Row, error) {
	if limit < 0 {
		return nil, model.Validationf("report limit must be >= 0, got %d", limit)
	}
	rows, err := s.db.QueryContext(ctx, store.ReportQuery(store.DialectSQLite), limit)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	var out []report.Row
	for rows.Next() {
		var r report.Row
		if err := rows.Scan(
			&r.CustomerID, &r.CustomerName, &r.City, &r.State,
			&r.OrderID, &r.OrderDate, &r.Status,
			&r.ProductID, &r.ProductName,
			&r.Quantity, &r.UnitPrice, &r.LineTotal,
			&r.PaymentAmount, &r.PaymentMethod,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report rows: %w", err)
	}
	return out, nil
}

// mapConstraintErr translates SQLite constraint failures into the pipeline's
// error kinds, keeping the offending table and row key.
func mapConstraintErr(table, key string, err error) error {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case codeForeignKey:
			return &model.IntegrityError{Table: table, Key: key, Err: err}
		case codePrimaryKey, codeUnique:
			return &model.ConflictError{Table: table, Key: key, Err: err}
		}
	}
	// Older result codes collapse to the generic constraint code; the message
	// still names the constraint kind.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY"):
		return &model.IntegrityError{Table: table, Key: key, Err: err}
	case strings.Contains(msg, "UNIQUE"):
		return &model.ConflictError{Table: table, Key: key, Err: err}
	}
	return fmt.Errorf("insert into %s (row %s): %w", table, key, err)
}
