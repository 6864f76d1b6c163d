package factories

import (
	"math/rand"

	"restosim/internal/models"
)

type RestaurantFactory struct{}

// CreateRestaurant builds the fixed opening state: $1000 revenue, the
// three menu items at quality 1 and inventory 100, a cook, a server and
// a washer at minimum wage, and a full pool of random candidates.
func (rf *RestaurantFactory) CreateRestaurant(config *models.Config, rng *rand.Rand) *models.Restaurant {
	name := config.RestaurantName
	if name == "" {
		name = fake.Company().Name()
	}

	menu := []models.MenuItem{
		models.NewMenuItem(models.ItemBurger, 5.00, 1),
		models.NewMenuItem(models.ItemFries, 2.00, 1),
		models.NewMenuItem(models.ItemSoda, 1.00, 1),
	}

	ef := &EmployeeFactory{}
	hired := []models.Employee{
		ef.CreateDefault(config, models.RoleCook, 1),
		ef.CreateDefault(config, models.RoleServer, 2),
		ef.CreateDefault(config, models.RoleWasher, 3),
	}

	restaurant := models.NewRestaurant(name, config.StartingRevenue, menu, hired, ef.CreatePool(config, rng), config.ShiftHours)
	restaurant.ClampInventory = config.ClampInventory
	return restaurant
}
