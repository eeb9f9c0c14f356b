package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Customers: []Customer{
			{CustomerID: "CUST0001", FirstName: "Avery", LastName: "Smith",
				Email: "avery.smith1@example.com", City: "Austin", State: "TX",
				SignupDate: "2023-01-15", LoyaltyTier: "Gold"},
		},
		Products: []Product{
			{ProductID: "PROD0001", Name: "Tablet 101", Category: "Electronics", Price: 100.50, InventoryCount: 75},
		},
		Orders: []Order{
			{OrderID: "ORD00001", CustomerID: "CUST0001", OrderDate: "2024-03-01",
				Status: "returned", ShippingMethod: "standard", TotalAmount: 201.00},
		},
		OrderItems: []OrderItem{
			{OrderItemID: "ITEM00001_1", OrderID: "ORD00001", ProductID: "PROD0001",
				Quantity: 2, UnitPrice: 100.50, LineTotal: 201.00},
		},
		Payments: []Payment{
			{PaymentID: "PAY00001", OrderID: "ORD00001", PaymentDate: "2024-03-01",
				Amount: 201.00, Method: "paypal", Status: "refunded", TransactionID: "TXN0000000001"},
		},
	}
}

func TestVerifyAcceptsConsistentDataset(t *testing.T) {
	require.NoError(t, sampleDataset().Verify())
}

func TestVerifyCatchesViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*Dataset)
	}{
		{"order references unknown customer", func(d *Dataset) { d.Orders[0].CustomerID = "CUST9999" }},
		{"item references unknown order", func(d *Dataset) { d.OrderItems[0].OrderID = "ORD99999" }},
		{"item references unknown product", func(d *Dataset) { d.OrderItems[0].ProductID = "PROD9999" }},
		{"payment references unknown order", func(d *Dataset) { d.Payments[0].OrderID = "ORD99999" }},
		{"line total does not match", func(d *Dataset) { d.OrderItems[0].LineTotal = 200.00 }},
		{"order total does not match items", func(d *Dataset) {
			d.Orders[0].TotalAmount = 500.00
			d.Payments[0].Amount = 500.00
		}},
		{"payment amount mismatch", func(d *Dataset) { d.Payments[0].Amount = 1.00 }},
		{"payment status does not follow order", func(d *Dataset) { d.Payments[0].Status = "settled" }},
		{"duplicate customer id", func(d *Dataset) { d.Customers = append(d.Customers, d.Customers[0]) }},
		{"duplicate email", func(d *Dataset) {
			c := d.Customers[0]
			c.CustomerID = "CUST0002"
			d.Customers = append(d.Customers, c)
		}},
		{"duplicate transaction id", func(d *Dataset) {
			p := d.Payments[0]
			p.PaymentID = "PAY00002"
			d.Payments = append(d.Payments, p)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := sampleDataset()
			tt.corrupt(ds)
			err := ds.Verify()
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestRecordFieldOrder(t *testing.T) {
	ds := sampleDataset()

	assert.Equal(t, []string{"CUST0001", "Avery", "Smith", "avery.smith1@example.com",
		"Austin", "TX", "2023-01-15", "Gold"}, ds.Customers[0].Record())
	assert.Equal(t, []string{"PROD0001", "Tablet 101", "Electronics", "100.50", "75"},
		ds.Products[0].Record())
	assert.Equal(t, []string{"ORD00001", "CUST0001", "2024-03-01", "returned", "standard", "201.00"},
		ds.Orders[0].Record())
	assert.Equal(t, []string{"ITEM00001_1", "ORD00001", "PROD0001", "2", "100.50", "201.00"},
		ds.OrderItems[0].Record())
	assert.Equal(t, []string{"PAY00001", "ORD00001", "2024-03-01", "201.00", "paypal", "refunded", "TXN0000000001"},
		ds.Payments[0].Record())

	assert.Len(t, CustomerColumns, len(ds.Customers[0].Record()))
	assert.Len(t, ProductColumns, len(ds.Products[0].Record()))
	assert.Len(t, OrderColumns, len(ds.Orders[0].Record()))
	assert.Len(t, OrderItemColumns, len(ds.OrderItems[0].Record()))
	assert.Len(t, PaymentColumns, len(ds.Payments[0].Record()))
}
