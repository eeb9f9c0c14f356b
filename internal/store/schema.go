// Package store declares the fixed five-table relational schema and the
// contracts the storage backends implement: a full drop/recreate/bulk-load
// cycle and the five-way report join.
package store

import (
	"fmt"
	"strings"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

// Dialect selects placeholder style and type mapping per backend.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Table describes one table's columns and foreign keys.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []FK
}

// Column describes a single column. Type is the SQLite storage type; the
// postgres dialect maps REAL to DOUBLE PRECISION.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
	NotNull    bool
	Unique     bool
}

// FK describes a foreign key reference.
type FK struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Tables returns the schema in creation/load order (parents before children).
func Tables() []Table {
	return []Table{
		{
			Name: model.TableCustomers,
			Columns: []Column{
				{Name: "customer_id", Type: "TEXT", PrimaryKey: true},
				{Name: "first_name", Type: "TEXT", NotNull: true},
				{Name: "last_name", Type: "TEXT", NotNull: true},
				{Name: "email", Type: "TEXT", NotNull: true, Unique: true},
				{Name: "city", Type: "TEXT"},
				{Name: "state", Type: "TEXT"},
				{Name: "signup_date", Type: "TEXT"},
				{Name: "loyalty_tier", Type: "TEXT"},
			},
		},
		{
			Name: model.TableProducts,
			Columns: []Column{
				{Name: "product_id", Type: "TEXT", PrimaryKey: true},
				{Name: "name", Type: "TEXT", NotNull: true},
				{Name: "category", Type: "TEXT"},
				{Name: "price", Type: "REAL", NotNull: true},
				{Name: "inventory_count", Type: "INTEGER", NotNull: true},
			},
		},
		{
			Name: model.TableOrders,
			Columns: []Column{
				{Name: "order_id", Type: "TEXT", PrimaryKey: true},
				{Name: "customer_id", Type: "TEXT", NotNull: true},
				{Name: "order_date", Type: "TEXT", NotNull: true},
				{Name: "status", Type: "TEXT"},
				{Name: "shipping_method", Type: "TEXT"},
				{Name: "total_amount", Type: "REAL", NotNull: true},
			},
			ForeignKeys: []FK{
				{Column: "customer_id", RefTable: model.TableCustomers, RefColumn: "customer_id"},
			},
		},
		{
			Name: model.TableOrderItems,
			Columns: []Column{
				{Name: "order_item_id", Type: "TEXT", PrimaryKey: true},
				{Name: "order_id", Type: "TEXT", NotNull: true},
				{Name: "product_id", Type: "TEXT", NotNull: true},
				{Name: "quantity", Type: "INTEGER", NotNull: true},
				{Name: "unit_price", Type: "REAL", NotNull: true},
				{Name: "line_total", Type: "REAL", NotNull: true},
			},
			ForeignKeys: []FK{
				{Column: "order_id", RefTable: model.TableOrders, RefColumn: "order_id"},
				{Column: "product_id", RefTable: model.TableProducts, RefColumn: "product_id"},
			},
		},
		{
			Name: model.TablePayments,
			Columns: []Column{
				{Name: "payment_id", Type: "TEXT", PrimaryKey: true},
				{Name: "order_id", Type: "TEXT", NotNull: true},
				{Name: "payment_date", Type: "TEXT", NotNull: true},
				{Name: "amount", Type: "REAL", NotNull: true},
				{Name: "method", Type: "TEXT", NotNull: true},
				{Name: "status", Type: "TEXT", NotNull: true},
				{Name: "transaction_id", Type: "TEXT", NotNull: true, Unique: true},
			},
			ForeignKeys: []FK{
				{Column: "order_id", RefTable: model.TableOrders, RefColumn: "order_id"},
			},
		},
	}
}

// DropOrder returns table names children-first, the order drops must run in.
func DropOrder() []string {
	return []string{
		model.TableOrderItems, model.TablePayments, model.TableOrders,
		model.TableProducts, model.TableCustomers,
	}
}

// init rejects any drift between the declared schema and the CSV/entity
// column declarations before anything touches a database.
func init() {
	declared := map[string][]string{
		model.TableCustomers:  model.CustomerColumns,
		model.TableProducts:   model.ProductColumns,
		model.TableOrders:     model.OrderColumns,
		model.TableOrderItems: model.OrderItemColumns,
		model.TablePayments:   model.PaymentColumns,
	}
	for _, t := range Tables() {
		cols := declared[t.Name]
		if len(cols) != len(t.Columns) {
			panic(fmt.Sprintf("store: %s has %d schema columns, %d entity columns", t.Name, len(t.Columns), len(cols)))
		}
		for i, c := range t.Columns {
			if c.Name != cols[i] {
				panic(fmt.Sprintf("store: %s column %d is %q in schema, %q in entity", t.Name, i, c.Name, cols[i]))
			}
		}
	}
}

// ColumnNames returns the table's column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (d Dialect) columnType(t string) string {
	if d == DialectPostgres && t == "REAL" {
		return "DOUBLE PRECISION"
	}
	return t
}

func (d Dialect) placeholder(i int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

// CreateSQL returns the CREATE TABLE statement for the dialect, with the
// declared primary key, NOT NULL, UNIQUE, and FOREIGN KEY constraints.
func (t Table) CreateSQL(d Dialect) string {
	defs := make([]string, 0, len(t.Columns)+len(t.ForeignKeys))
	for _, c := range t.Columns {
		def := "    " + c.Name + " " + d.columnType(c.Type)
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if c.NotNull {
			def += " NOT NULL"
		}
		if c.Unique {
			def += " UNIQUE"
		}
		defs = append(defs, def)
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s(%s)", fk.Column, fk.RefTable, fk.RefColumn))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", t.Name, strings.Join(defs, ",\n"))
}

// InsertSQL returns the parameterized insert statement for the dialect,
// listing every column explicitly in declaration order.
func (t Table) InsertSQL(d Dialect) string {
	placeholders := make([]string, len(t.Columns))
	for i := range t.Columns {
		placeholders[i] = d.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name,
		strings.Join(t.ColumnNames(), ", "),
		strings.Join(placeholders, ", "),
	)
}
