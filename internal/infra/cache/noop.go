package cache

import (
	"context"

	"staybook/internal/domain/review"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Noop is used when REDIS_ADDR is empty: every read misses.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (shared.CachedSummary, error) {
	return shared.CachedSummary{}, nil
}

func (Noop) Set(context.Context, uuid.UUID, int64, review.Summary) error { return nil }

func (Noop) Invalidate(context.Context, uuid.UUID) error { return nil }
