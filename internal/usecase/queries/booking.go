package queries

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	// FindOverlapping returns the stays overlapping stay, across all listings when listingID is nil.
	FindOverlapping(ctx context.Context, listingID *uuid.UUID, stay booking.DateRange) ([]booking.Slot, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

var ErrBookingNotFound = errs.NewKind("booking not found", errs.ErrNotFound)

type BookingQueries interface {
	ListMine(ctx context.Context, actor shared.Actor) ([]*BookingView, error)
	// Get returns one booking to its guest or to an admin. Other callers get NotFound.
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor shared.Actor) ([]*BookingView, error) {
	if err := actor.Require(user.RoleGuest); err != nil {
		return nil, err
	}
	rows, err := q.store.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	if err := actor.Require(user.RoleGuest, user.RoleAdmin); err != nil {
		return nil, err
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if actor.Role != user.RoleAdmin && v.UserID != actor.UserID {
		return nil, ErrBookingNotFound
	}
	return v, nil
}
