package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"swaad/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create order
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (order_id, user_id, restaurant_id, items, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		order.ID,
		order.UserID,
		order.RestaurantID,
		itemsJSON,
		order.Status,
	).Scan(&order.CreatedAt)
}

// --------------------------------------------------
// Fetch one order
// --------------------------------------------------
func (r *PostgresRepository) ByID(ctx context.Context, orderID string) (*Order, error) {
	var (
		o         Order
		itemsJSON []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT order_id, user_id, restaurant_id, items, status, created_at
		FROM orders
		WHERE order_id::text = $1
	`, orderID).Scan(
		&o.ID,
		&o.UserID,
		&o.RestaurantID,
		&itemsJSON,
		&o.Status,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", orderID, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}

	return &o, nil
}

// --------------------------------------------------
// Order history for one user (newest first)
// --------------------------------------------------
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, user_id, restaurant_id, items, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order

	for rows.Next() {
		var (
			o         Order
			itemsJSON []byte
		)
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.RestaurantID,
			&itemsJSON,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
