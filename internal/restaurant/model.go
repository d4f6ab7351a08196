package restaurant

import "time"

type Restaurant struct {
	ID        string    `json:"restaurant_id"`
	Name      string    `json:"name"`
	Borough   string    `json:"borough"`
	Cuisine   string    `json:"cuisine"`
	CreatedAt time.Time `json:"-"`
}

type MenuItem struct {
	ID           string  `json:"item_id"`
	RestaurantID string  `json:"-"`
	Name         string  `json:"name"`
	Section      string  `json:"section"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}
