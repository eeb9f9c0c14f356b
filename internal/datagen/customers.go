package datagen

import (
	"fmt"
	"strings"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

// Customers generates count customer records with sequential CUST#### IDs.
// Emails embed the sequence number, so they stay unique even when name pairs
// repeat. count=0 yields an empty slice.
func Customers(src *Source, count int) ([]model.Customer, error) {
	if count < 0 {
		return nil, model.Validationf("customer count must be >= 0, got %d", count)
	}

	customers := make([]model.Customer, 0, count)
	for i := 1; i <= count; i++ {
		first := src.Pick(firstNames)
		last := src.Pick(lastNames)
		customers = append(customers, model.Customer{
			CustomerID:  fmt.Sprintf("CUST%04d", i),
			FirstName:   first,
			LastName:    last,
			Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			City:        src.Pick(cities),
			State:       src.Pick(states),
			SignupDate:  src.DateWithinDays(730),
			LoyaltyTier: src.PickWeighted(loyaltyTiers, loyaltyWeights),
		})
	}
	return customers, nil
}
