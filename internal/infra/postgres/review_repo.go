package postgres

import (
	"context"

	"staybook/internal/domain/review"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create fails with KindDuplicateKey when the user already reviewed the listing.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, listing_id, booking_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rv.ID(), rv.ListingID(), rv.BookingID(), rv.UserID(),
		rv.Rating().Value(), rv.Comment().String(), rv.CreatedAt())
	if err != nil {
		return wrapErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) RatingsForListing(ctx context.Context, listingID uuid.UUID) ([]review.Record, error) {
	return ratingsForListing(ctx, r.db, listingID)
}

// ratingsForListing matches reviews by their own listing_id or by the listing of their booking;
// imported rows may lack listing_id.
func ratingsForListing(ctx context.Context, db DBTX, listingID uuid.UUID) ([]review.Record, error) {
	rows, err := db.Query(ctx, `
		SELECT coalesce(r.listing_id, '00000000-0000-0000-0000-000000000000'::uuid), b.listing_id, r.rating
		FROM reviews r
		JOIN bookings b ON b.id = r.booking_id
		WHERE r.listing_id = $1 OR b.listing_id = $1`, listingID)
	if err != nil {
		return nil, wrapErr("failed to load ratings", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (review.Record, error) {
		var rec review.Record
		err := row.Scan(&rec.ListingID, &rec.StayListingID, &rec.Rating)
		return rec, err
	})
	if err != nil {
		return nil, wrapErr("failed to scan ratings", err)
	}
	return records, nil
}
