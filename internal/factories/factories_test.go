package factories

import (
	"math/rand"
	"testing"

	"restosim/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		StartingRevenue: models.DefaultStartingRevenue,
		MinimumWage:     models.DefaultMinimumWage,
		ShiftHours:      models.DefaultShiftHours,
		PoolSize:        models.DefaultPoolSize,
	}
}

func TestCreateDefaultEmployee(t *testing.T) {
	ef := &EmployeeFactory{}
	e := ef.CreateDefault(testConfig(), models.RoleCook, 1)

	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, models.RoleCook, e.Role)
	assert.Equal(t, 5, e.Rating)
	assert.Equal(t, models.DefaultMinimumWage, e.Wage)
	assert.NotEmpty(t, e.Name)
}

func TestCreateRandomEmployee(t *testing.T) {
	ef := &EmployeeFactory{}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		e := ef.CreateRandom(testConfig(), rng)

		assert.GreaterOrEqual(t, e.Rating, models.MinRating)
		assert.LessOrEqual(t, e.Rating, models.MaxRating)
		assert.GreaterOrEqual(t, e.ID, int64(1))
		assert.LessOrEqual(t, e.ID, int64(99999))
		assert.Contains(t, models.Roles, e.Role)
		assert.NotEmpty(t, e.Name)

		// A rating above 5 raises the wage a dollar per point.
		expected := models.DefaultMinimumWage
		if e.Rating > 5 {
			expected += float64(e.Rating - 5)
		}
		assert.Equal(t, expected, e.Wage)
	}
}

func TestCreatePool(t *testing.T) {
	ef := &EmployeeFactory{}
	rng := rand.New(rand.NewSource(2))

	pool := ef.CreatePool(testConfig(), rng)
	assert.Len(t, pool, models.DefaultPoolSize)
}

func TestCreateCustomer(t *testing.T) {
	cf := &CustomerFactory{}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		c := cf.CreateCustomer(rng)
		assert.GreaterOrEqual(t, c.Cash, models.MinCustomerCash)
		assert.Less(t, c.Cash, models.MaxCustomerCash)
	}
}

func TestCreateBatch(t *testing.T) {
	cf := &CustomerFactory{}
	rng := rand.New(rand.NewSource(4))

	assert.Len(t, cf.CreateBatch(17, rng), 17)
	assert.Empty(t, cf.CreateBatch(0, rng))
}

func TestCreateRestaurantOpeningState(t *testing.T) {
	rf := &RestaurantFactory{}
	rng := rand.New(rand.NewSource(5))

	r := rf.CreateRestaurant(testConfig(), rng)

	assert.Equal(t, 1000.00, r.Revenue)
	assert.NotEmpty(t, r.Name)

	require.Len(t, r.Menu, 3)
	burger, _ := r.Item(models.ItemBurger)
	fries, _ := r.Item(models.ItemFries)
	soda, _ := r.Item(models.ItemSoda)
	assert.Equal(t, 5.00, burger.Price)
	assert.Equal(t, 2.00, fries.Price)
	assert.Equal(t, 1.00, soda.Price)
	for _, item := range r.Menu {
		assert.Equal(t, 1, item.Quality)
		assert.Equal(t, models.InitialInventory, item.Inventory)
	}

	require.Len(t, r.Hired, 3)
	roles := []models.Role{models.RoleCook, models.RoleServer, models.RoleWasher}
	for i, e := range r.Hired {
		assert.Equal(t, int64(i+1), e.ID)
		assert.Equal(t, roles[i], e.Role)
		assert.Equal(t, 5, e.Rating)
		assert.Equal(t, models.DefaultMinimumWage, e.Wage)
	}

	assert.Len(t, r.Potential, models.DefaultPoolSize)
}

func TestCreateRestaurantUsesConfiguredName(t *testing.T) {
	rf := &RestaurantFactory{}
	cfg := testConfig()
	cfg.RestaurantName = "The Greasy Spoon"

	r := rf.CreateRestaurant(cfg, rand.New(rand.NewSource(6)))
	assert.Equal(t, "The Greasy Spoon", r.Name)
}
