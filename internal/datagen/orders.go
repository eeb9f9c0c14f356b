package datagen

import (
	"fmt"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

// Orders generates count orders against the given customers and products,
// along with their order items and exactly one payment per order. Each order
// carries 1-5 items; the same product may appear on multiple lines. The order
// total is the sum of line totals, rounded once at the end so per-line
// rounding does not compound.
func Orders(src *Source, customers []model.Customer, products []model.Product, count int) ([]model.Order, []model.OrderItem, []model.Payment, error) {
	if count < 0 {
		return nil, nil, nil, model.Validationf("order count must be >= 0, got %d", count)
	}
	if count > 0 && len(customers) == 0 {
		return nil, nil, nil, model.Validationf("cannot generate %d orders without customers", count)
	}
	if count > 0 && len(products) == 0 {
		return nil, nil, nil, model.Validationf("cannot generate %d orders without products", count)
	}

	orders := make([]model.Order, 0, count)
	var items []model.OrderItem
	payments := make([]model.Payment, 0, count)

	for i := 1; i <= count; i++ {
		customer := customers[src.IntBetween(0, len(customers)-1)]
		orderID := fmt.Sprintf("ORD%05d", i)
		orderDate := src.DateWithinDays(365)
		status := src.PickWeighted(orderStatuses, orderStatusWeights)
		shipping := src.Pick(shippingMethods)

		itemCount := src.IntBetween(1, 5)
		var orderTotal float64
		for seq := 1; seq <= itemCount; seq++ {
			product := products[src.IntBetween(0, len(products)-1)]
			quantity := src.IntBetween(1, 5)
			lineTotal := roundCents(float64(quantity) * product.Price)
			orderTotal += lineTotal
			items = append(items, model.OrderItem{
				OrderItemID: fmt.Sprintf("ITEM%05d_%d", i, seq),
				OrderID:     orderID,
				ProductID:   product.ProductID,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				LineTotal:   lineTotal,
			})
		}
		orderTotal = roundCents(orderTotal)

		orders = append(orders, model.Order{
			OrderID:        orderID,
			CustomerID:     customer.CustomerID,
			OrderDate:      orderDate,
			Status:         status,
			ShippingMethod: shipping,
			TotalAmount:    orderTotal,
		})

		paymentStatus := "settled"
		if status == "returned" {
			paymentStatus = "refunded"
		}
		payments = append(payments, model.Payment{
			PaymentID:     fmt.Sprintf("PAY%05d", i),
			OrderID:       orderID,
			PaymentDate:   orderDate,
			Amount:        orderTotal,
			Method:        src.Pick(paymentMethods),
			Status:        paymentStatus,
			TransactionID: fmt.Sprintf("TXN%010d", i),
		})
	}

	return orders, items, payments, nil
}
