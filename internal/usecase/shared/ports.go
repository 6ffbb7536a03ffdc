package shared

import (
	"context"
	"time"

	"staybook/internal/domain/review"

	"github.com/google/uuid"
)

const (
	EventListingCreated = "listing.created"
	EventBookingCreated = "booking.created"
	EventReviewCreated  = "review.created"
)

// Event is a fact published after a commit. Key orders events of one listing.
type Event struct {
	Type       string
	Key        string
	OccurredAt time.Time
	Payload    any
}

type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// CachedSummary is one cache read. Generation counts the invalidations of the
// listing seen by the read and must be handed back to Set.
type CachedSummary struct {
	Summary    review.Summary
	Generation int64
	Hit        bool
}

// RatingCache holds computed rating summaries per listing. Set is a no-op when the
// listing was invalidated after the read that produced generation.
type RatingCache interface {
	Get(ctx context.Context, listingID uuid.UUID) (CachedSummary, error)
	Set(ctx context.Context, listingID uuid.UUID, generation int64, s review.Summary) error
	Invalidate(ctx context.Context, listingID uuid.UUID) error
}
