package notes

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(
	ctx context.Context,
	userID string,
	texts []string,
	noteType string,
) error {

	for _, text := range texts {
		_, err := r.db.Exec(ctx, `
			INSERT INTO user_notes (user_id, note_text, note_type)
			VALUES ($1, $2, $3)
		`, userID, text, noteType)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Note, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, note_text, note_type, created_at
		FROM user_notes
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note

	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Text, &n.Type, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}
