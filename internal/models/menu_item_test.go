package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncreaseInventory(t *testing.T) {
	item := NewMenuItem(ItemBurger, 5.00, 1)
	assert.Equal(t, InitialInventory, item.Inventory)

	item.IncreaseInventory(25)
	assert.Equal(t, 125, item.Inventory)
}

func TestDecreaseInventory(t *testing.T) {
	item := NewMenuItem(ItemBurger, 5.00, 1)
	item.Inventory = 25

	changed := item.DecreaseInventory(25, false)
	assert.True(t, changed)
	assert.Equal(t, 0, item.Inventory)
}

func TestDecreaseInventoryAtZeroIsNoOp(t *testing.T) {
	item := NewMenuItem(ItemFries, 2.00, 1)
	item.Inventory = 0

	changed := item.DecreaseInventory(25, false)
	assert.False(t, changed)
	assert.Equal(t, 0, item.Inventory)

	item.Inventory = -3
	changed = item.DecreaseInventory(1, false)
	assert.False(t, changed)
	assert.Equal(t, -3, item.Inventory)
}

func TestDecreaseInventoryOvershootGoesNegative(t *testing.T) {
	// The legacy guard only checks stock before the decrement, so an
	// oversized decrement from positive stock crosses zero.
	item := NewMenuItem(ItemSoda, 1.00, 1)
	item.Inventory = 5

	changed := item.DecreaseInventory(8, false)
	assert.True(t, changed)
	assert.Equal(t, -3, item.Inventory)
}

func TestDecreaseInventoryClampMode(t *testing.T) {
	item := NewMenuItem(ItemSoda, 1.00, 1)
	item.Inventory = 5

	changed := item.DecreaseInventory(8, true)
	assert.True(t, changed)
	assert.Equal(t, 0, item.Inventory)
}

func TestInventoryRoundTrip(t *testing.T) {
	item := NewMenuItem(ItemBurger, 5.00, 1)
	item.Inventory = 40

	item.IncreaseInventory(17)
	item.DecreaseInventory(17, false)
	assert.Equal(t, 40, item.Inventory)
}

func TestWholesaleCost(t *testing.T) {
	cases := []struct {
		name    ItemName
		quality int
		want    float64
	}{
		{ItemBurger, 1, 2.50},
		{ItemBurger, 2, 4.00},
		{ItemBurger, 3, 5.50},
		{ItemFries, 1, 1.00},
		{ItemFries, 2, 1.50},
		{ItemFries, 3, 2.00},
		{ItemSoda, 1, 0.25},
		{ItemSoda, 2, 0.37},
		{ItemSoda, 3, 0.50},
	}

	for _, tc := range cases {
		item := NewMenuItem(tc.name, 1.00, tc.quality)
		assert.Equalf(t, tc.want, item.WholesaleCost(), "WholesaleCost(%s, quality %d)", tc.name, tc.quality)
	}
}
