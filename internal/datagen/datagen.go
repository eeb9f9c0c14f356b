package datagen

import "github.com/SamsaniMonish/ecomgen/internal/model"

// Counts holds the requested dataset sizes for one generation run.
type Counts struct {
	Customers int
	Products  int
	Orders    int
}

// Generate produces one complete, mutually consistent dataset. Entity types
// are generated in a fixed order (customers, products, then orders) so that
// a given seed always produces the same dataset.
func Generate(src *Source, counts Counts) (*model.Dataset, error) {
	customers, err := Customers(src, counts.Customers)
	if err != nil {
		return nil, err
	}
	products, err := Products(src, counts.Products)
	if err != nil {
		return nil, err
	}
	orders, items, payments, err := Orders(src, customers, products, counts.Orders)
	if err != nil {
		return nil, err
	}
	return &model.Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Payments:   payments,
	}, nil
}
