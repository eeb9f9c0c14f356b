package model

import "math"

// centsEqual compares two monetary values within half a cent, the tolerance
// left by rounding line totals to two decimals.
func centsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

// Verify checks the cross-entity invariants of a generated dataset before it
// reaches the store: foreign keys resolve, order totals reconcile with their
// items, payments mirror their orders, and all IDs are unique.
func (d *Dataset) Verify() error {
	customers := make(map[string]bool, len(d.Customers))
	emails := make(map[string]bool, len(d.Customers))
	for _, c := range d.Customers {
		if customers[c.CustomerID] {
			return Validationf("duplicate customer_id %s", c.CustomerID)
		}
		if emails[c.Email] {
			return Validationf("duplicate email %s", c.Email)
		}
		customers[c.CustomerID] = true
		emails[c.Email] = true
	}

	products := make(map[string]bool, len(d.Products))
	for _, p := range d.Products {
		if products[p.ProductID] {
			return Validationf("duplicate product_id %s", p.ProductID)
		}
		products[p.ProductID] = true
	}

	orders := make(map[string]Order, len(d.Orders))
	for _, o := range d.Orders {
		if _, ok := orders[o.OrderID]; ok {
			return Validationf("duplicate order_id %s", o.OrderID)
		}
		if !customers[o.CustomerID] {
			return Validationf("order %s references unknown customer %s", o.OrderID, o.CustomerID)
		}
		orders[o.OrderID] = o
	}

	itemTotals := make(map[string]float64, len(d.Orders))
	itemIDs := make(map[string]bool, len(d.OrderItems))
	for _, it := range d.OrderItems {
		if itemIDs[it.OrderItemID] {
			return Validationf("duplicate order_item_id %s", it.OrderItemID)
		}
		itemIDs[it.OrderItemID] = true
		if _, ok := orders[it.OrderID]; !ok {
			return Validationf("order item %s references unknown order %s", it.OrderItemID, it.OrderID)
		}
		if !products[it.ProductID] {
			return Validationf("order item %s references unknown product %s", it.OrderItemID, it.ProductID)
		}
		if !centsEqual(it.LineTotal, math.Round(float64(it.Quantity)*it.UnitPrice*100)/100) {
			return Validationf("order item %s line_total %.2f does not match qty*price", it.OrderItemID, it.LineTotal)
		}
		itemTotals[it.OrderID] += it.LineTotal
	}
	for id, o := range orders {
		if !centsEqual(o.TotalAmount, math.Round(itemTotals[id]*100)/100) {
			return Validationf("order %s total_amount %.2f does not match item sum %.2f", id, o.TotalAmount, itemTotals[id])
		}
	}

	paymentIDs := make(map[string]bool, len(d.Payments))
	txnIDs := make(map[string]bool, len(d.Payments))
	paidOrders := make(map[string]bool, len(d.Payments))
	for _, p := range d.Payments {
		if paymentIDs[p.PaymentID] {
			return Validationf("duplicate payment_id %s", p.PaymentID)
		}
		if txnIDs[p.TransactionID] {
			return Validationf("duplicate transaction_id %s", p.TransactionID)
		}
		paymentIDs[p.PaymentID] = true
		txnIDs[p.TransactionID] = true
		o, ok := orders[p.OrderID]
		if !ok {
			return Validationf("payment %s references unknown order %s", p.PaymentID, p.OrderID)
		}
		if paidOrders[p.OrderID] {
			return Validationf("order %s has more than one payment", p.OrderID)
		}
		paidOrders[p.OrderID] = true
		if !centsEqual(p.Amount, o.TotalAmount) {
			return Validationf("payment %s amount %.2f does not match order total %.2f", p.PaymentID, p.Amount, o.TotalAmount)
		}
		want := "settled"
		if o.Status == "returned" {
			want = "refunded"
		}
		if p.Status != want {
			return Validationf("payment %s status %s does not follow order status %s", p.PaymentID, p.Status, o.Status)
		}
	}

	return nil
}
