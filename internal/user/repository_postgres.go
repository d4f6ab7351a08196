package user

import (
	"context"
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
// Create user
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, user *User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (user_id, username, email)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`,
		user.ID,
		user.Username,
		user.Email,
	).Scan(&user.CreatedAt)
}

// --------------------------------------------------
// Fetch user with order id list
// --------------------------------------------------
func (r *PostgresRepository) ByID(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.db.QueryRow(ctx, `
		SELECT user_id, username, email, created_at
		FROM users
		WHERE user_id::text = $1
	`, userID).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT order_id FROM orders WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	u.Orders = []string{}
	for rows.Next() {
		var orderID string
		if err := rows.Scan(&orderID); err != nil {
			return nil, err
		}
		u.Orders = append(u.Orders, orderID)
	}

	return &u, rows.Err()
}

// --------------------------------------------------
// Existence checks
// --------------------------------------------------
func (r *PostgresRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE user_id::text = $1)
	`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}
