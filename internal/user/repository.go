package user

import "context"

// Repository defines the user store contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, user *User) error
	ByID(ctx context.Context, userID string) (*User, error)
	Exists(ctx context.Context, userID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
