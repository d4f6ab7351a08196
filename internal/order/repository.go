package order

import "context"

// Repository defines the order store contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	ByID(ctx context.Context, orderID string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}
