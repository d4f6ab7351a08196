package notes

import "context"

// Repository is an append-only store. Notes are never updated or
// deleted; each generation run appends a new batch.
type Repository interface {
	Append(ctx context.Context, userID string, texts []string, noteType string) error
	ListByUser(ctx context.Context, userID string) ([]Note, error)
}
