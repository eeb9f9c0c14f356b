package datagen

import (
	"fmt"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

// Products generates count product records. Each fixed category contributes
// count/len(categories) products; integer truncation is made up with "Misc"
// accessories so exactly count products come back. Product IDs are a single
// monotonic PROD#### sequence across categories.
func Products(src *Source, count int) ([]model.Product, error) {
	if count < 0 {
		return nil, model.Validationf("product count must be >= 0, got %d", count)
	}

	products := make([]model.Product, 0, count)
	counter := 1
	perCategory := count / len(productCategories)
	for _, cat := range productCategories {
		for i := 0; i < perCategory; i++ {
			base := src.Pick(cat.Items)
			price := src.PriceBetween(9.99, 399.99)
			inventory := src.IntBetween(50, 1000)
			products = append(products, model.Product{
				ProductID:      fmt.Sprintf("PROD%04d", counter),
				Name:           fmt.Sprintf("%s %d", base, src.IntBetween(100, 999)),
				Category:       cat.Name,
				Price:          price,
				InventoryCount: inventory,
			})
			counter++
		}
	}

	// Pad the truncation remainder (and the whole set when count is smaller
	// than the category count) with Misc accessories.
	for len(products) < count {
		products = append(products, model.Product{
			ProductID:      fmt.Sprintf("PROD%04d", counter),
			Name:           fmt.Sprintf("Accessory %d", len(products)+1),
			Category:       "Misc",
			Price:          src.PriceBetween(4.99, 49.99),
			InventoryCount: src.IntBetween(20, 500),
		})
		counter++
	}
	return products, nil
}
