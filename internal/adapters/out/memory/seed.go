package memory

import (
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// Catalog is a set of restaurants and food items to load into a Store.
type Catalog struct {
	Restaurants []*restaurant.Restaurant
	FoodItems   []*catalog.FoodItem
}

// Seed loads c into the store. Existing entries with the same IDs are replaced.
func (s *Store) Seed(c Catalog) error {
	for _, r := range c.Restaurants {
		if err := s.PutRestaurant(r); err != nil {
			return err
		}
	}
	for _, f := range c.FoodItems {
		if err := s.PutFoodItem(f); err != nil {
			return err
		}
	}
	return nil
}

// Fixed IDs of the demo catalog, so local clients can hardcode them.
const (
	DemoPizzeriaID       = "8a0b5a36-9f6e-4c1e-9d0a-0c6f1f1d2a01"
	DemoNoodleBarID      = "8a0b5a36-9f6e-4c1e-9d0a-0c6f1f1d2a02"
	DemoPendingKitchenID = "8a0b5a36-9f6e-4c1e-9d0a-0c6f1f1d2a03"
	DemoMargheritaID     = "5f3c2b1a-7d4e-4a8b-b1c2-3d4e5f6a7b01"
	DemoPepperoniID      = "5f3c2b1a-7d4e-4a8b-b1c2-3d4e5f6a7b02"
	DemoTiramisuID       = "5f3c2b1a-7d4e-4a8b-b1c2-3d4e5f6a7b03"
	DemoRamenID          = "5f3c2b1a-7d4e-4a8b-b1c2-3d4e5f6a7b04"
	DemoGyozaID          = "5f3c2b1a-7d4e-4a8b-b1c2-3d4e5f6a7b05"
)

// DemoCatalog returns a small catalog for local runs: two approved
// restaurants with stocked menus and one restaurant still pending approval.
func DemoCatalog() (Catalog, error) {
	type item struct {
		id, restaurantID, name string
		price                  int64
		available              bool
		stock                  int
	}

	restaurants := []struct {
		id, name string
		status   restaurant.Status
	}{
		{DemoPizzeriaID, "Napoli Pizzeria", restaurant.Approved},
		{DemoNoodleBarID, "Tokyo Noodle Bar", restaurant.Approved},
		{DemoPendingKitchenID, "Ghost Kitchen", restaurant.PendingApproval},
	}
	items := []item{
		{DemoMargheritaID, DemoPizzeriaID, "Margherita", 25000, true, 50},
		{DemoPepperoniID, DemoPizzeriaID, "Pepperoni", 30000, true, 40},
		{DemoTiramisuID, DemoPizzeriaID, "Tiramisu", 15000, true, 5},
		{DemoRamenID, DemoNoodleBarID, "Shoyu Ramen", 35000, true, 30},
		{DemoGyozaID, DemoNoodleBarID, "Gyoza", 12000, false, 0},
	}

	var c Catalog
	for _, r := range restaurants {
		id, err := kernel.UUIDFromString(r.id)
		if err != nil {
			return Catalog{}, err
		}
		built, err := restaurant.NewRestaurant(id, r.name, r.status)
		if err != nil {
			return Catalog{}, err
		}
		c.Restaurants = append(c.Restaurants, built)
	}
	for _, i := range items {
		id, err := kernel.UUIDFromString(i.id)
		if err != nil {
			return Catalog{}, err
		}
		restaurantID, err := kernel.UUIDFromString(i.restaurantID)
		if err != nil {
			return Catalog{}, err
		}
		built, err := catalog.NewFoodItem(id, restaurantID, i.name, decimal.NewFromInt(i.price), i.available, i.stock)
		if err != nil {
			return Catalog{}, err
		}
		c.FoodItems = append(c.FoodItems, built)
	}

	return c, nil
}
