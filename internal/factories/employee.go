package factories

import (
	"math/rand"

	"restosim/internal/models"

	"github.com/jaswdr/faker"
)

var fake = faker.New()

type EmployeeFactory struct{}

// CreateDefault seeds one of the opening-day staff: rating 5, minimum
// wage, caller-chosen role and id.
func (ef *EmployeeFactory) CreateDefault(config *models.Config, role models.Role, id int64) models.Employee {
	return models.Employee{
		ID:     id,
		Name:   fake.Person().Name(),
		Wage:   config.MinimumWage,
		Rating: 5,
		Role:   role,
	}
}

// CreateRandom generates a candidate for the potential pool. The pool
// id is provisional; a real roster id is assigned on hire. A rating
// above 5 raises the asking wage by a dollar per point.
func (ef *EmployeeFactory) CreateRandom(config *models.Config, rng *rand.Rand) models.Employee {
	rating := rng.Intn(models.MaxRating) + 1
	wage := config.MinimumWage
	if rating > 5 {
		wage += float64(rating - 5)
	}

	return models.Employee{
		ID:     int64(rng.Intn(99998) + 1),
		Name:   fake.Person().Name(),
		Wage:   wage,
		Rating: rating,
		Role:   models.Roles[rng.Intn(len(models.Roles))],
	}
}

// CreatePool fills a fresh potential-employee list.
func (ef *EmployeeFactory) CreatePool(config *models.Config, rng *rand.Rand) []models.Employee {
	size := config.PoolSize
	if size <= 0 {
		size = models.DefaultPoolSize
	}
	pool := make([]models.Employee, size)
	for i := range pool {
		pool[i] = ef.CreateRandom(config, rng)
	}
	return pool
}
