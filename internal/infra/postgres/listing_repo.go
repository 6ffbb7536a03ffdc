package postgres

import (
	"context"
	"time"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ListingRepository struct {
	db DBTX
}

func NewListingRepository(db DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO listings (id, host_id, capacity, country, city, price, average_rating, total_reviews, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID(), l.HostID(), l.Capacity(), l.Country(), l.City(), l.Price(),
		l.Rating().Average, l.Rating().Count, l.CreatedAt())
	if err != nil {
		return wrapErr("failed to create listing", err)
	}
	return nil
}

// LockByID reads the listing with FOR UPDATE, serializing writers of its bookings and reviews.
func (r *ListingRepository) LockByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row := r.db.QueryRow(ctx, "SELECT "+listingColumns+" FROM listings WHERE id = $1 FOR UPDATE", id)
	l, err := scanListing(row)
	if err != nil {
		return nil, wrapErr("failed to lock listing", err)
	}
	return l, nil
}

func (r *ListingRepository) UpdateRating(ctx context.Context, id uuid.UUID, s review.Summary) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE listings SET average_rating = $2, total_reviews = $3 WHERE id = $1`,
		id, s.Average, s.Count)
	if err != nil {
		return wrapErr("failed to update listing rating", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("listing not found")
	}
	return nil
}

func scanListing(row pgx.Row) (*listing.Listing, error) {
	var (
		id, hostID    uuid.UUID
		capacity      int
		country, city string
		price, avg    float64
		total         int
		createdAt     time.Time
	)
	if err := row.Scan(&id, &hostID, &capacity, &country, &city, &price, &avg, &total, &createdAt); err != nil {
		return nil, err
	}
	return listing.Reconstruct(id, hostID, capacity, country, city, price,
		review.Summary{Count: total, Average: avg}, createdAt.UTC()), nil
}
