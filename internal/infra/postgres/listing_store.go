package postgres

import (
	"context"
	"time"

	"staybook/internal/domain/listing"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ListingReadStore struct {
	db DBTX
}

func NewListingReadStore(db DBTX) *ListingReadStore {
	return &ListingReadStore{db: db}
}

func (s *ListingReadStore) Find(ctx context.Context, f listing.Filter, skip, limit int) ([]*queries.ListingView, error) {
	q, args := listingSelectSQL(f, skip, limit)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr("failed to query listings", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ListingView, error) {
		return scanListingView(row)
	})
	if err != nil {
		return nil, wrapErr("failed to scan listings", err)
	}
	return out, nil
}

func (s *ListingReadStore) Count(ctx context.Context, f listing.Filter) (int, error) {
	q, args := listingCountSQL(f)
	var n int
	if err := s.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, wrapErr("failed to count listings", err)
	}
	return n, nil
}

func (s *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row := s.db.QueryRow(ctx, "SELECT "+listingColumns+" FROM listings WHERE id = $1", id)
	v, err := scanListingView(row)
	if err != nil {
		return nil, wrapErr("failed to find listing", err)
	}
	return v, nil
}

func scanListingView(row pgx.Row) (*queries.ListingView, error) {
	var (
		v         queries.ListingView
		createdAt time.Time
	)
	err := row.Scan(&v.ID, &v.HostID, &v.Capacity, &v.Country, &v.City, &v.Price,
		&v.AverageRating, &v.TotalReviews, &createdAt)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = createdAt.UTC()
	return &v, nil
}
