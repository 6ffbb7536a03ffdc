package postgres

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, listing_id, user_id, lower(stay), upper(stay), names_of_people, created_at`

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create fails with KindConflict when bookings_no_overlap rejects the stay.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, listing_id, user_id, stay, names_of_people, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.ListingID(), b.UserID(),
		pgconv.DateRange(b.Stay().From(), b.Stay().To()),
		b.Occupants().Names(), b.CreatedAt())
	if err != nil {
		return wrapErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, listingID uuid.UUID, stay booking.DateRange) ([]booking.Slot, error) {
	return findOverlapping(ctx, r.db, &listingID, stay)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("failed to find booking", err)
	}
	return b, nil
}

// FindForUser returns the user's bookings that are ref itself or are stays at listing ref.
func (r *BookingRepository) FindForUser(ctx context.Context, userID uuid.UUID, ref uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id = $1 AND (id = $2 OR listing_id = $2) ORDER BY lower(stay), id",
		userID, ref)
	if err != nil {
		return nil, wrapErr("failed to find user bookings", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*booking.Booking, error) {
		return scanBooking(row)
	})
	if err != nil {
		return nil, wrapErr("failed to scan user bookings", err)
	}
	return out, nil
}

func findOverlapping(ctx context.Context, db DBTX, listingID *uuid.UUID, stay booking.DateRange) ([]booking.Slot, error) {
	q := "SELECT listing_id, lower(stay), upper(stay) FROM bookings WHERE stay && $1"
	args := []any{pgconv.DateRange(stay.From(), stay.To())}
	if listingID != nil {
		q += " AND listing_id = $2"
		args = append(args, *listingID)
	}
	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr("failed to find overlapping bookings", err)
	}
	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (booking.Slot, error) {
		var (
			id       uuid.UUID
			from, to time.Time
		)
		if err := row.Scan(&id, &from, &to); err != nil {
			return booking.Slot{}, err
		}
		return booking.Slot{ListingID: id, Stay: booking.RestoreDateRange(from, to)}, nil
	})
	if err != nil {
		return nil, wrapErr("failed to scan overlapping bookings", err)
	}
	return slots, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, listingID, userID uuid.UUID
		from, to, createdAt   time.Time
		names                 []string
	)
	if err := row.Scan(&id, &listingID, &userID, &from, &to, &names, &createdAt); err != nil {
		return nil, err
	}
	return booking.Reconstruct(id, listingID, userID, booking.RestoreDateRange(from, to), names, createdAt.UTC()), nil
}
