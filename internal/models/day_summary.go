package models

// DaySummary reports the outcome of one simulated day. It is built from
// pre/post snapshots of the restaurant and handed back for display or
// event output; nothing persists it.
type DaySummary struct {
	Day             int              `json:"day"`
	CustomersServed int              `json:"customers_served"`
	UnitsSold       map[ItemName]int `json:"units_sold"`
	LaborCost       float64          `json:"labor_cost"`
	ProfitDelta     float64          `json:"profit_delta"`
	Revenue         float64          `json:"revenue"`
}
