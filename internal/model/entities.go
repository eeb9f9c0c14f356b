// Package model defines the typed entity records shared by the generator,
// the CSV layer, and the relational store, plus the error kinds that are
// fatal to a pipeline run.
package model

import "strconv"

// Customer is one synthetic customer. Records are immutable after generation.
type Customer struct {
	CustomerID  string
	FirstName   string
	LastName    string
	Email       string
	City        string
	State       string
	SignupDate  string
	LoyaltyTier string
}

// Product is one synthetic catalog entry.
type Product struct {
	ProductID      string
	Name           string
	Category       string
	Price          float64
	InventoryCount int
}

// Order references an existing customer. TotalAmount equals the rounded sum
// of its items' line totals.
type Order struct {
	OrderID        string
	CustomerID     string
	OrderDate      string
	Status         string
	ShippingMethod string
	TotalAmount    float64
}

// OrderItem is one line of an order. UnitPrice is copied from the product at
// generation time, not looked up live.
type OrderItem struct {
	OrderItemID string
	OrderID     string
	ProductID   string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// Payment is derived from its completed order: same date, same amount, and a
// status that is a pure function of the order status.
type Payment struct {
	PaymentID     string
	OrderID       string
	PaymentDate   string
	Amount        float64
	Method        string
	Status        string
	TransactionID string
}

// Dataset is one full generation batch, produced in a single run and loaded
// wholesale into the store.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
}

// Table names in child-before-parent (drop) order.
const (
	TableCustomers  = "customers"
	TableProducts   = "products"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TablePayments   = "payments"
)

// CustomerColumns is the CSV header and insert column order for customers.
var CustomerColumns = []string{
	"customer_id", "first_name", "last_name", "email",
	"city", "state", "signup_date", "loyalty_tier",
}

var ProductColumns = []string{
	"product_id", "name", "category", "price", "inventory_count",
}

var OrderColumns = []string{
	"order_id", "customer_id", "order_date", "status", "shipping_method", "total_amount",
}

var OrderItemColumns = []string{
	"order_item_id", "order_id", "product_id", "quantity", "unit_price", "line_total",
}

var PaymentColumns = []string{
	"payment_id", "order_id", "payment_date", "amount", "method", "status", "transaction_id",
}

// money renders a monetary value with exactly two decimals, matching the
// REAL columns in the store and the report projections.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Record returns the customer's fields in CustomerColumns order.
func (c Customer) Record() []string {
	return []string{c.CustomerID, c.FirstName, c.LastName, c.Email, c.City, c.State, c.SignupDate, c.LoyaltyTier}
}

func (p Product) Record() []string {
	return []string{p.ProductID, p.Name, p.Category, money(p.Price), strconv.Itoa(p.InventoryCount)}
}

func (o Order) Record() []string {
	return []string{o.OrderID, o.CustomerID, o.OrderDate, o.Status, o.ShippingMethod, money(o.TotalAmount)}
}

func (i OrderItem) Record() []string {
	return []string{i.OrderItemID, i.OrderID, i.ProductID, strconv.Itoa(i.Quantity), money(i.UnitPrice), money(i.LineTotal)}
}

func (p Payment) Record() []string {
	return []string{p.PaymentID, p.OrderID, p.PaymentDate, money(p.Amount), p.Method, p.Status, p.TransactionID}
}
