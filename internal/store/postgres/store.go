// Package postgres is the alternate relational backend over jackc/pgx,
// for loading the dataset into a shared PostgreSQL instance instead of a
// local SQLite file.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SamsaniMonish/ecomgen/internal/model"
	"github.com/SamsaniMonish/ecomgen/internal/report"
	"github.com/SamsaniMonish/ecomgen/internal/store"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// ConnConfig holds the connection parameters for the destination database.
type ConnConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// ConnString renders a postgres:// URL, escaping credentials.
func (c ConnConfig) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	return u.String()
}

// Store runs one load or report cycle over a single pgx connection.
type Store struct {
	conn *pgx.Conn
}

var _ store.Store = (*Store)(nil)

// Open connects to the destination database.
func Open(ctx context.Context, cfg ConnConfig) (*Store, error) {
	conn, err := pgx.Connect(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect to %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Database, err)
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error { return s.conn.Close(context.Background()) }

// Load implements store.Store. Dropping children-first with CASCADE takes the
// place of SQLite's enforcement toggle; constraints are live for the inserts.
func (s *Store) Load(ctx context.Context, ds *model.Dataset) (store.RowCounts, error) {
	for _, name := range store.DropOrder() {
		if _, err := s.conn.Exec(ctx, "DROP TABLE IF EXISTS "+name+" CASCADE"); err != nil {
			return nil, fmt.Errorf("drop %s: %w", name, err)
		}
	}
	for _, t := range store.Tables() {
		if _, err := s.conn.Exec(ctx, t.CreateSQL(store.DialectPostgres)); err != nil {
			return nil, fmt.Errorf("create %s: %w", t.Name, err)
		}
	}

	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin load transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rows := range store.BindDataset(ds) {
		sql := rows.Table.InsertSQL(store.DialectPostgres)
		for i, bound := range rows.Args {
			if _, err := tx.Exec(ctx, sql, bound...); err != nil {
				return nil, mapConstraintErr(rows.Table.Name, rows.Keys[i], err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit load: %w", err)
	}

	counts := make(store.RowCounts, len(store.LoadOrder))
	for _, name := range store.LoadOrder {
		var n int64
		if err := s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+name).Scan(&n); err != nil {
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
	rows, err := s.conn.Query(ctx, store.ReportQuery(store.DialectPostgres), limit)
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

func mapConstraintErr(table, key string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return &model.IntegrityError{Table: table, Key: key, Err: err}
		case pgUniqueViolation:
			return &model.ConflictError{Table: table, Key: key, Err: err}
		}
	}
	return fmt.Errorf("insert into %s (row %s): %w", table, key, err)
}
