package preference

import "context"

// Repository stores one Preference record per user. ByUser returns the
// zero value when no record exists yet: preferences are created empty on
// first access, never eagerly.
type Repository interface {
	ByUser(ctx context.Context, userID string) (Preference, error)
	Save(ctx context.Context, userID string, pref Preference) error
}
