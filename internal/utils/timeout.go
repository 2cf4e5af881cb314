package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds every repository query. Checkout runs a
// handful of queries back to back, so keep this short.
const DefaultDBTimeout = 3 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
