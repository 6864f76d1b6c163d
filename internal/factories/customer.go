package factories

import (
	"math/rand"

	"restosim/internal/models"
)

type CustomerFactory struct{}

// CreateCustomer draws one day-trade customer: cash uniform in
// [10, 100), coin-flip preferences for the optional items.
func (cf *CustomerFactory) CreateCustomer(rng *rand.Rand) models.Customer {
	return models.Customer{
		Cash:       models.MinCustomerCash + rng.Float64()*(models.MaxCustomerCash-models.MinCustomerCash),
		LikesFries: rng.Intn(2) == 1,
		LikesSoda:  rng.Intn(2) == 1,
	}
}

// CreateBatch generates the day's customer list in arrival order.
func (cf *CustomerFactory) CreateBatch(count int, rng *rand.Rand) []models.Customer {
	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		customers = append(customers, cf.CreateCustomer(rng))
	}
	return customers
}
