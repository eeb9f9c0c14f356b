package store

import (
	"context"
	"fmt"

	"github.com/SamsaniMonish/ecomgen/internal/model"
	"github.com/SamsaniMonish/ecomgen/internal/report"
)

// RowCounts maps table name to the number of rows loaded. Iterate in
// LoadOrder for stable output.
type RowCounts map[string]int64

// LoadOrder is the parent-before-child order tables are created and loaded in.
var LoadOrder = []string{
	model.TableCustomers, model.TableProducts, model.TableOrders,
	model.TableOrderItems, model.TablePayments,
}

// Total returns the sum across all tables.
func (c RowCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// Store is one relational backend. A store is opened, used for one
// load or one report query, and closed; there is no pooling and no
// partial-commit recovery.
type Store interface {
	// Load drops and recreates the five tables, bulk-inserts the dataset
	// preserving column order, and reports per-table row counts. A foreign
	// key violation aborts the load with a model.IntegrityError naming the
	// offending row; duplicate keys surface as model.ConflictError.
	Load(ctx context.Context, ds *model.Dataset) (RowCounts, error)

	// Report runs the five-way join ordered by order date descending and
	// returns at most limit rows. limit=0 returns no rows without error.
	Report(ctx context.Context, limit int) ([]report.Row, error)

	Close() error
}

// ReportQuery is the five-way join behind Report. Ties on order_date break
// deterministically on order_id then order_item_id; the limit is the single
// bind parameter.
func ReportQuery(d Dialect) string {
	return fmt.Sprintf(`SELECT
    c.customer_id,
    c.first_name || ' ' || c.last_name AS customer_name,
    c.city,
    c.state,
    o.order_id,
    o.order_date,
    o.status,
    oi.product_id,
    p.name AS product_name,
    oi.quantity,
    oi.unit_price,
    oi.line_total,
    pay.amount AS payment_amount,
    pay.method AS payment_method
FROM customers c
JOIN orders o ON o.customer_id = c.customer_id
JOIN order_items oi ON oi.order_id = o.order_id
JOIN products p ON p.product_id = oi.product_id
JOIN payments pay ON pay.order_id = o.order_id
ORDER BY o.order_date DESC, o.order_id ASC, oi.order_item_id ASC
LIMIT %s`, d.placeholder(1))
}

// args guards the arity of a bound insert row against the table's declared
// columns when the binding is constructed.
func args(t Table, vals ...any) []any {
	if len(vals) != len(t.Columns) {
		panic(fmt.Sprintf("store: %s insert binds %d values for %d columns", t.Name, len(vals), len(t.Columns)))
	}
	return vals
}

// Rows flattens the dataset into per-table bound insert rows, in LoadOrder.
// Key is the row's primary key, used in error reporting.
type Rows struct {
	Table Table
	Keys  []string
	Args  [][]any
}

// BindDataset binds every record to its insert statement's parameters.
func BindDataset(ds *model.Dataset) []Rows {
	tables := make(map[string]Table, 5)
	for _, t := range Tables() {
		tables[t.Name] = t
	}

	customers := Rows{Table: tables[model.TableCustomers]}
	for _, c := range ds.Customers {
		customers.Keys = append(customers.Keys, c.CustomerID)
		customers.Args = append(customers.Args, args(customers.Table,
			c.CustomerID, c.FirstName, c.LastName, c.Email, c.City, c.State, c.SignupDate, c.LoyaltyTier))
	}

	products := Rows{Table: tables[model.TableProducts]}
	for _, p := range ds.Products {
		products.Keys = append(products.Keys, p.ProductID)
		products.Args = append(products.Args, args(products.Table,
			p.ProductID, p.Name, p.Category, p.Price, p.InventoryCount))
	}

	orders := Rows{Table: tables[model.TableOrders]}
	for _, o := range ds.Orders {
		orders.Keys = append(orders.Keys, o.OrderID)
		orders.Args = append(orders.Args, args(orders.Table,
			o.OrderID, o.CustomerID, o.OrderDate, o.Status, o.ShippingMethod, o.TotalAmount))
	}

	items := Rows{Table: tables[model.TableOrderItems]}
	for _, it := range ds.OrderItems {
		items.Keys = append(items.Keys, it.OrderItemID)
		items.Args = append(items.Args, args(items.Table,
			it.OrderItemID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.LineTotal))
	}

	payments := Rows{Table: tables[model.TablePayments]}
	for _, p := range ds.Payments {
		payments.Keys = append(payments.Keys, p.PaymentID)
		payments.Args = append(payments.Args, args(payments.Table,
			p.PaymentID, p.OrderID, p.PaymentDate, p.Amount, p.Method, p.Status, p.TransactionID))
	}

	return []Rows{customers, products, orders, items, payments}
}
