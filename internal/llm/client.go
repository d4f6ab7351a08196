package llm

import (
	"context"
)

// Client is any model backend that turns a prompt into raw text.
type Client interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}
