package datagen

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
}

func TestCustomers(t *testing.T) {
	src := NewSource(42)
	customers, err := Customers(src, 5)
	require.NoError(t, err)
	require.Len(t, customers, 5)

	for i, c := range customers {
		assert.Equal(t, fmt.Sprintf("CUST%04d", i+1), c.CustomerID)
		assert.Contains(t, c.Email, fmt.Sprintf("%d@example.com", i+1))
		assert.NotEmpty(t, c.FirstName)
		assert.NotEmpty(t, c.City)
		assert.Contains(t, []string{"Bronze", "Silver", "Gold", "Platinum"}, c.LoyaltyTier)
	}
}

func TestCustomersEmptyAndInvalid(t *testing.T) {
	src := NewSource(1)

	customers, err := Customers(src, 0)
	require.NoError(t, err)
	assert.Empty(t, customers)

	_, err = Customers(src, -1)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCustomerEmailsAreUnique(t *testing.T) {
	src := NewSource(7)
	customers, err := Customers(src, 200)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range customers {
		require.False(t, seen[c.Email], "duplicate email %s", c.Email)
		seen[c.Email] = true
	}
}

func TestProductsExactCountAndMiscPadding(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantMisc int
	}{
		{"divides evenly", 10, 0},
		{"truncation remainder", 12, 2},
		{"fewer than categories", 3, 3},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(42)
			products, err := Products(src, tt.count)
			require.NoError(t, err)
			require.Len(t, products, tt.count)

			misc := 0
			for i, p := range products {
				assert.Equal(t, fmt.Sprintf("PROD%04d", i+1), p.ProductID)
				assert.Positive(t, p.Price)
				assert.GreaterOrEqual(t, p.InventoryCount, 0)
				if p.Category == "Misc" {
					misc++
				}
			}
			assert.Equal(t, tt.wantMisc, misc)
		})
	}
}

func TestOrdersRequireCustomersAndProducts(t *testing.T) {
	src := NewSource(1)
	customers, err := Customers(src, 3)
	require.NoError(t, err)
	products, err := Products(src, 5)
	require.NoError(t, err)

	var verr *model.ValidationError

	_, _, _, err = Orders(src, nil, products, 1)
	require.ErrorAs(t, err, &verr)

	_, _, _, err = Orders(src, customers, nil, 1)
	require.ErrorAs(t, err, &verr)

	_, _, _, err = Orders(src, customers, products, -1)
	require.ErrorAs(t, err, &verr)

	// Zero orders against empty inputs is fine.
	orders, items, payments, err := Orders(src, nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, items)
	assert.Empty(t, payments)
}

func TestGenerateScenario(t *testing.T) {
	src := NewSource(42)
	ds, err := Generate(src, Counts{Customers: 5, Products: 10, Orders: 3})
	require.NoError(t, err)

	require.Len(t, ds.Customers, 5)
	assert.Equal(t, "CUST0001", ds.Customers[0].CustomerID)
	assert.Equal(t, "CUST0005", ds.Customers[4].CustomerID)

	require.Len(t, ds.Orders, 3)
	require.Len(t, ds.Payments, 3)
	assert.Equal(t, "ORD00001", ds.Orders[0].OrderID)
	assert.Equal(t, "ORD00003", ds.Orders[2].OrderID)

	// Each order total is the rounded sum of its items' line totals, and has
	// exactly one payment referencing it.
	itemSums := map[string]float64{}
	for _, it := range ds.OrderItems {
		assert.InDelta(t, math.Round(float64(it.Quantity)*it.UnitPrice*100)/100, it.LineTotal, 1e-9)
		itemSums[it.OrderID] += it.LineTotal
	}
	paid := map[string]bool{}
	for i, p := range ds.Payments {
		o := ds.Orders[i]
		assert.Equal(t, o.OrderID, p.OrderID)
		assert.False(t, paid[p.OrderID])
		paid[p.OrderID] = true
		assert.Equal(t, o.TotalAmount, p.Amount)
		assert.Equal(t, o.OrderDate, p.PaymentDate)
		if o.Status == "returned" {
			assert.Equal(t, "refunded", p.Status)
		} else {
			assert.Equal(t, "settled", p.Status)
		}
	}
	for _, o := range ds.Orders {
		assert.InDelta(t, math.Round(itemSums[o.OrderID]*100)/100, o.TotalAmount, 1e-9)
	}

	require.NoError(t, ds.Verify())
}

func TestGenerateReferentialConsistency(t *testing.T) {
	src := NewSource(99)
	ds, err := Generate(src, Counts{Customers: 20, Products: 30, Orders: 50})
	require.NoError(t, err)
	require.NoError(t, ds.Verify())

	assert.GreaterOrEqual(t, len(ds.OrderItems), 50)
	assert.LessOrEqual(t, len(ds.OrderItems), 250)
}

func TestGenerateDeterminism(t *testing.T) {
	now := fixedClock()

	a, err := Generate(NewSourceAt(42, now), Counts{Customers: 15, Products: 20, Orders: 30})
	require.NoError(t, err)
	b, err := Generate(NewSourceAt(42, now), Counts{Customers: 15, Products: 20, Orders: 30})
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the dataset")

	c, err := Generate(NewSourceAt(7, now), Counts{Customers: 15, Products: 20, Orders: 30})
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should differ")
}

func TestGenerateZeroCounts(t *testing.T) {
	src := NewSource(42)
	ds, err := Generate(src, Counts{})
	require.NoError(t, err)
	assert.Empty(t, ds.Customers)
	assert.Empty(t, ds.Products)
	assert.Empty(t, ds.Orders)
	assert.Empty(t, ds.OrderItems)
	assert.Empty(t, ds.Payments)
	require.NoError(t, ds.Verify())
}
