package order

import "time"

const StatusPending = "pending"

type Order struct {
	ID           string    `json:"order_id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Items        []string  `json:"items"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"-"`
}
