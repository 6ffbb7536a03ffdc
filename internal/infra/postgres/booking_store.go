package postgres

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db DBTX
}

func NewBookingReadStore(db DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindOverlapping(ctx context.Context, listingID *uuid.UUID, stay booking.DateRange) ([]booking.Slot, error) {
	return findOverlapping(ctx, s.db, listingID, stay)
}

func (s *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id = $1 ORDER BY lower(stay) DESC, id", userID)
	if err != nil {
		return nil, wrapErr("failed to query user bookings", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingView, error) {
		b, err := scanBooking(row)
		if err != nil {
			return nil, err
		}
		return queries.NewBookingView(b), nil
	})
	if err != nil {
		return nil, wrapErr("failed to scan user bookings", err)
	}
	return out, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("failed to find booking", err)
	}
	return queries.NewBookingView(b), nil
}
