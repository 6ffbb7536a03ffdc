package postgres

import (
	"context"
	"time"

	"staybook/internal/domain/review"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db DBTX
}

func NewReviewReadStore(db DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

// FindByListing lists reviews newest first, resolving the listing through the stay
// when the row does not carry it.
func (s *ReviewReadStore) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, coalesce(r.listing_id, b.listing_id), r.booking_id, r.user_id, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN bookings b ON b.id = r.booking_id
		WHERE r.listing_id = $1 OR b.listing_id = $1
		ORDER BY r.created_at DESC, r.id`, listingID)
	if err != nil {
		return nil, wrapErr("failed to query reviews", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReviewView, error) {
		var (
			v         queries.ReviewView
			createdAt time.Time
		)
		if err := row.Scan(&v.ID, &v.ListingID, &v.BookingID, &v.UserID, &v.Rating, &v.Comment, &createdAt); err != nil {
			return nil, err
		}
		v.CreatedAt = createdAt.UTC()
		return &v, nil
	})
	if err != nil {
		return nil, wrapErr("failed to scan reviews", err)
	}
	return out, nil
}

func (s *ReviewReadStore) RatingsForListing(ctx context.Context, listingID uuid.UUID) ([]review.Record, error) {
	return ratingsForListing(ctx, s.db, listingID)
}
