package models

// Restaurant is the single source of truth for one establishment's
// mutable state. All simulation reads and writes go through it; it does
// no I/O and draws no randomness of its own.
type Restaurant struct {
	Name            string     `json:"name"`
	Revenue         float64    `json:"revenue"`
	Menu            []MenuItem `json:"menu"`
	Hired           []Employee `json:"hired"`
	Potential       []Employee `json:"potential"`
	TodaysCustomers []Customer `json:"-"`

	ShiftHours     float64 `json:"shift_hours"`
	ClampInventory bool    `json:"-"`

	nextID int64
}

func NewRestaurant(name string, revenue float64, menu []MenuItem, hired []Employee, potential []Employee, shiftHours float64) *Restaurant {
	var maxID int64
	for _, e := range hired {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return &Restaurant{
		Name:       name,
		Revenue:    revenue,
		Menu:       menu,
		Hired:      hired,
		Potential:  potential,
		ShiftHours: shiftHours,
		nextID:     maxID,
	}
}

// Item returns a pointer into the menu for the named item.
func (r *Restaurant) Item(name ItemName) (*MenuItem, bool) {
	for i := range r.Menu {
		if r.Menu[i].Name == name {
			return &r.Menu[i], true
		}
	}
	return nil, false
}

// SetItemPrice updates the named item's price. Unknown names are left
// untouched and reported as false.
func (r *Restaurant) SetItemPrice(name ItemName, price float64) bool {
	item, ok := r.Item(name)
	if !ok {
		return false
	}
	item.Price = price
	return true
}

func (r *Restaurant) SetItemQuality(name ItemName, quality int) bool {
	item, ok := r.Item(name)
	if !ok {
		return false
	}
	item.Quality = quality
	return true
}

func (r *Restaurant) AddInventory(name ItemName, amount int) bool {
	item, ok := r.Item(name)
	if !ok {
		return false
	}
	item.IncreaseInventory(amount)
	return true
}

func (r *Restaurant) RemoveInventory(name ItemName, amount int) bool {
	item, ok := r.Item(name)
	if !ok {
		return false
	}
	return item.DecreaseInventory(amount, r.ClampInventory)
}

// Hire moves the candidate at the given potential-pool index onto the
// hired roster under a fresh sequential id. The candidate's pool id is
// captured before rekeying so the removal cannot hit a different record
// if pool ids collide with roster ids.
func (r *Restaurant) Hire(poolIndex int) (Employee, bool) {
	if poolIndex < 0 || poolIndex >= len(r.Potential) {
		return Employee{}, false
	}
	candidate := r.Potential[poolIndex]
	poolID := candidate.ID

	kept := r.Potential[:0]
	for _, e := range r.Potential {
		if e.ID != poolID {
			kept = append(kept, e)
		}
	}
	r.Potential = kept

	r.nextID++
	candidate.SetID(r.nextID)
	r.Hired = append(r.Hired, candidate)
	return candidate, true
}

// Fire removes the hired employee with the given id. Firing an absent
// id leaves the roster unchanged.
func (r *Restaurant) Fire(id int64) bool {
	for i, e := range r.Hired {
		if e.ID == id {
			r.Hired = append(r.Hired[:i], r.Hired[i+1:]...)
			return true
		}
	}
	return false
}

// ReplacePotentialPool swaps in a freshly generated candidate list.
func (r *Restaurant) ReplacePotentialPool(pool []Employee) {
	r.Potential = pool
}

// AdjustRevenue applies a positive or negative delta. Revenue has no
// floor; a badly run restaurant goes into the red.
func (r *Restaurant) AdjustRevenue(delta float64) {
	r.Revenue += delta
}

// AggregateHiredRating sums the ratings of everyone on the roster. This
// total is the hard cap on customers served in a day.
func (r *Restaurant) AggregateHiredRating() int {
	total := 0
	for _, e := range r.Hired {
		total += e.Rating
	}
	return total
}

// AggregateMenuQuality sums the quality of all menu items; it drives
// customer demand.
func (r *Restaurant) AggregateMenuQuality() int {
	total := 0
	for _, item := range r.Menu {
		total += item.Quality
	}
	return total
}

// DailyLaborCost is the wage bill for one full shift across the roster.
func (r *Restaurant) DailyLaborCost() float64 {
	cost := 0.0
	for _, e := range r.Hired {
		cost += e.Wage * r.ShiftHours
	}
	return cost
}

// NextID reports the most recently assigned roster id.
func (r *Restaurant) NextID() int64 {
	return r.nextID
}
