package simulator

import (
	"log"
	"math/rand"
	"time"

	"restosim/internal/factories"
	"restosim/internal/models"

	"github.com/schollz/progressbar/v3"
)

// Simulator drives the restaurant one day at a time. It owns the single
// random source for the run, so a fixed seed reproduces a whole game.
type Simulator struct {
	Config     *models.Config
	Restaurant *models.Restaurant
	Day        int
	Rng        *rand.Rand

	employeeFactory *factories.EmployeeFactory
	customerFactory *factories.CustomerFactory
}

func NewSimulator(config *models.Config) *Simulator {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	restaurantFactory := &factories.RestaurantFactory{}
	return &Simulator{
		Config:          config,
		Restaurant:      restaurantFactory.CreateRestaurant(config, rng),
		Rng:             rng,
		employeeFactory: &factories.EmployeeFactory{},
		customerFactory: &factories.CustomerFactory{},
	}
}

// QualityModifier translates total menu quality into the additive bump
// on the day's customer-demand range. The thresholds form a step
// function, not a curve; boundaries are inclusive.
func QualityModifier(totalQuality int) int {
	switch {
	case totalQuality <= 3:
		return 1
	case totalQuality <= 5:
		return 10
	case totalQuality <= 8:
		return 20
	default:
		return 25
	}
}

// SimulateDay runs one full day: draw demand from the quality-adjusted
// range, clamp it to the roster's total rating, generate that many
// customers, resolve their purchases in arrival order against live
// price and stock, then settle the wage bill.
func (s *Simulator) SimulateDay() models.DaySummary {
	s.Day++
	r := s.Restaurant

	revenueBefore := r.Revenue
	inventoryBefore := make(map[models.ItemName]int, len(r.Menu))
	for _, item := range r.Menu {
		inventoryBefore[item.Name] = item.Inventory
	}

	modifier := QualityModifier(r.AggregateMenuQuality())
	demand := s.Rng.Intn(models.MaxCustomers-models.MinCustomers) + models.MinCustomers + modifier
	served := demand
	if ceiling := r.AggregateHiredRating(); ceiling < served {
		served = ceiling
	}

	r.TodaysCustomers = s.customerFactory.CreateBatch(served, s.Rng)
	for i := range r.TodaysCustomers {
		s.serveCustomer(&r.TodaysCustomers[i])
	}

	laborCost := r.DailyLaborCost()
	r.AdjustRevenue(-laborCost)

	unitsSold := make(map[models.ItemName]int, len(r.Menu))
	for _, item := range r.Menu {
		unitsSold[item.Name] = inventoryBefore[item.Name] - item.Inventory
	}

	return models.DaySummary{
		Day:             s.Day,
		CustomersServed: len(r.TodaysCustomers),
		UnitsSold:       unitsSold,
		LaborCost:       laborCost,
		ProfitDelta:     r.Revenue - revenueBefore,
		Revenue:         r.Revenue,
	}
}

// serveCustomer walks one customer through the fixed purchase order:
// burger always, then fries and soda if liked.
func (s *Simulator) serveCustomer(customer *models.Customer) {
	s.attemptPurchase(customer, models.ItemBurger)
	if customer.LikesFries {
		s.attemptPurchase(customer, models.ItemFries)
	}
	if customer.LikesSoda {
		s.attemptPurchase(customer, models.ItemSoda)
	}
}

// attemptPurchase sells one unit if the customer can afford the current
// price and stock remains. Each attempt re-reads live state, so an item
// exhausted mid-batch stops selling for the rest of the day.
func (s *Simulator) attemptPurchase(customer *models.Customer, name models.ItemName) {
	item, ok := s.Restaurant.Item(name)
	if !ok {
		return
	}
	if customer.Cash >= item.Price && item.Inventory > 0 {
		item.DecreaseInventory(1, s.Restaurant.ClampInventory)
		s.Restaurant.AdjustRevenue(item.Price)
	}
}

// OrderInventory restocks the named item at its wholesale cost, charged
// against revenue. Unknown items are reported, not mutated.
func (s *Simulator) OrderInventory(name models.ItemName, quantity int) bool {
	item, ok := s.Restaurant.Item(name)
	if !ok {
		return false
	}
	s.Restaurant.AdjustRevenue(-float64(quantity) * item.WholesaleCost())
	item.IncreaseInventory(quantity)
	return true
}

// RegeneratePotentialPool replaces the candidate list wholesale.
func (s *Simulator) RegeneratePotentialPool() {
	s.Restaurant.ReplacePotentialPool(s.employeeFactory.CreatePool(s.Config, s.Rng))
}

// RefreshPoolIfDue regenerates the candidate pool on every seventh day,
// including day zero before the first shift.
func (s *Simulator) RefreshPoolIfDue() {
	if s.Day%7 == 0 {
		s.RegeneratePotentialPool()
	}
}

// Run simulates the configured number of days in batch mode, emitting
// one day-summary event per day.
func (s *Simulator) Run() {
	output := s.determineOutputDestination()
	defer closeOutput(output)

	days := s.Config.Days
	log.Printf("Simulating %d days at %q\n", days, s.Restaurant.Name)

	bar := progressbar.Default(int64(days))
	for i := 0; i < days; i++ {
		s.RefreshPoolIfDue()
		summary := s.SimulateDay()

		msg, err := serializeSummary(summary)
		if err != nil {
			log.Printf("Error serializing day summary: %v", err)
			continue
		}
		if err := output.WriteMessage(daySummaryTopic, msg); err != nil {
			log.Printf("Failed to write message: %v", err)
		}
		_ = bar.Add(1)
	}

	log.Printf("Simulation completed: day %d, revenue $%.2f\n", s.Day, s.Restaurant.Revenue)
}
