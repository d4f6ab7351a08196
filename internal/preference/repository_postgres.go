package preference

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Load preference record
// --------------------------------------------------
func (r *PostgresRepository) ByUser(
	ctx context.Context,
	userID string,
) (Preference, error) {

	var (
		pref        Preference
		dietaryJSON []byte
		spiceLevel  *string
		protein     *string
		avoidJSON   []byte
		otherJSON   []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT dietary_restrictions, spice_level, preferred_protein, avoid, other_preferences
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(&dietaryJSON, &spiceLevel, &protein, &avoidJSON, &otherJSON)

	if errors.Is(err, pgx.ErrNoRows) {
		// no record yet: every field unconstrained
		return Preference{}, nil
	}
	if err != nil {
		return Preference{}, err
	}

	// JSONB null scans as nil bytes, preserving "no constraint"
	if dietaryJSON != nil {
		if err := json.Unmarshal(dietaryJSON, &pref.DietaryRestrictions); err != nil {
			return Preference{}, err
		}
	}
	if avoidJSON != nil {
		if err := json.Unmarshal(avoidJSON, &pref.Avoid); err != nil {
			return Preference{}, err
		}
	}
	if otherJSON != nil {
		if err := json.Unmarshal(otherJSON, &pref.OtherPreferences); err != nil {
			return Preference{}, err
		}
	}
	if spiceLevel != nil {
		pref.SpiceLevel = *spiceLevel
	}
	if protein != nil {
		pref.PreferredProtein = *protein
	}

	return pref, nil
}

// --------------------------------------------------
// Upsert preference record
// --------------------------------------------------
func (r *PostgresRepository) Save(
	ctx context.Context,
	userID string,
	pref Preference,
) error {

	dietaryJSON, err := marshalNullable(pref.DietaryRestrictions != nil, pref.DietaryRestrictions)
	if err != nil {
		return err
	}
	avoidJSON, err := marshalNullable(pref.Avoid != nil, pref.Avoid)
	if err != nil {
		return err
	}
	otherJSON, err := marshalNullable(pref.OtherPreferences != nil, pref.OtherPreferences)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_preferences (
			user_id,
			dietary_restrictions,
			spice_level,
			preferred_protein,
			avoid,
			other_preferences
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			spice_level = EXCLUDED.spice_level,
			preferred_protein = EXCLUDED.preferred_protein,
			avoid = EXCLUDED.avoid,
			other_preferences = EXCLUDED.other_preferences,
			updated_at = now()
	`,
		userID,
		dietaryJSON,
		nullableString(pref.SpiceLevel),
		nullableString(pref.PreferredProtein),
		avoidJSON,
		otherJSON,
	)

	return err
}

// marshalNullable keeps SQL NULL for "no constraint" and [] / {} for an
// explicitly cleared constraint.
func marshalNullable(present bool, v any) ([]byte, error) {
	if !present {
		return nil, nil
	}
	return json.Marshal(v)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
