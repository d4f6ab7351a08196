package user

import "time"

type User struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Orders    []string  `json:"orders"`
	CreatedAt time.Time `json:"-"`
}
