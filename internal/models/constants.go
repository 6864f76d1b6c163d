package models

const (
	RoleCook   Role = "Cook"
	RoleServer Role = "Server"
	RoleWasher Role = "Washer"
	RoleBusser Role = "Busser"
	RoleHost   Role = "Host"

	ItemBurger ItemName = "Burger"
	ItemFries  ItemName = "Fries"
	ItemSoda   ItemName = "Soda"

	// Demand bounds: the daily customer draw is taken from
	// [MinCustomers+modifier, MaxCustomers+modifier).
	MinCustomers = 5
	MaxCustomers = 25

	MinRating = 1
	MaxRating = 10

	DefaultMinimumWage     = 7.25
	DefaultShiftHours      = 8
	DefaultStartingRevenue = 1000.00
	DefaultPoolSize        = 10

	InitialInventory = 100

	MinCustomerCash = 10.0
	MaxCustomerCash = 100.0
)

// Roles lists every position a generated employee can hold.
var Roles = []Role{RoleCook, RoleServer, RoleWasher, RoleBusser, RoleHost}

// MenuItemNames lists the fixed menu in purchase-resolution order.
var MenuItemNames = []ItemName{ItemBurger, ItemFries, ItemSoda}
