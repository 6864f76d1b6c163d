package models

// ItemName identifies one of the three fixed menu items. Using a typed
// key keeps lookups free of the silent-typo failure mode of raw strings.
type ItemName string

type MenuItem struct {
	Name      ItemName `json:"name"`
	Price     float64  `json:"price"`
	Quality   int      `json:"quality"` // 1 (low) to 3 (high)
	Inventory int      `json:"inventory"`
}

func NewMenuItem(name ItemName, price float64, quality int) MenuItem {
	return MenuItem{
		Name:      name,
		Price:     price,
		Quality:   quality,
		Inventory: InitialInventory,
	}
}

// IncreaseInventory adds the given amount unconditionally.
func (m *MenuItem) IncreaseInventory(amount int) {
	m.Inventory += amount
}

// DecreaseInventory removes the given amount of stock and reports
// whether anything changed.
//
// The legacy rule only guards against decrementing when stock is already
// at or below zero; an oversized decrement from positive stock drives
// the count negative. With clamp enabled the count bottoms out at zero
// instead.
func (m *MenuItem) DecreaseInventory(amount int, clamp bool) bool {
	if m.Inventory <= 0 {
		return false
	}
	m.Inventory -= amount
	if clamp && m.Inventory < 0 {
		m.Inventory = 0
	}
	return true
}

// WholesaleCost is the per-unit restock price, keyed on current quality.
func (m *MenuItem) WholesaleCost() float64 {
	switch m.Name {
	case ItemBurger:
		switch m.Quality {
		case 1:
			return 2.50
		case 2:
			return 4.00
		default:
			return 5.50
		}
	case ItemFries:
		switch m.Quality {
		case 1:
			return 1.00
		case 2:
			return 1.50
		default:
			return 2.00
		}
	case ItemSoda:
		switch m.Quality {
		case 1:
			return 0.25
		case 2:
			return 0.37
		default:
			return 0.50
		}
	}
	return 0
}
