package commands

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConflictObserver counts rejected bookings by where the overlap was caught:
// "check" for the in-transaction scan, "constraint" for the storage constraint.
type ConflictObserver interface {
	ObserveBookingConflict(stage string)
}

type CreateBookingRequest struct {
	ListingID     uuid.UUID
	DateFrom      string
	DateTo        string
	NamesOfPeople []string
}

type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateBookingRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	events   shared.EventPublisher
	observer ConflictObserver
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, events shared.EventPublisher, observer ConflictObserver, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, events: events, observer: observer, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateBookingRequest) (*queries.BookingView, error) {
	if err := actor.Require(user.RoleGuest); err != nil {
		return nil, err
	}
	if req.ListingID == uuid.Nil {
		return nil, listing.ErrListingNotFound
	}
	stay, err := booking.ParseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}
	occupants, err := booking.NewOccupants(req.NamesOfPeople)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	// Within may run the body more than once; only the final attempt is observed.
	var conflictStage string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conflictStage = ""
		// the lock serializes bookings of this listing until commit
		l, err := tx.Listings().LockByID(ctx, req.ListingID)
		if err != nil {
			return listingErr(err)
		}

		existing, err := tx.Bookings().FindOverlapping(ctx, l.ID(), stay)
		if err != nil {
			return err
		}
		if err := booking.CheckAvailability(l.ID(), stay, existing); err != nil {
			conflictStage = "check"
			return err
		}

		b, err := booking.NewBooking(l.ID(), actor.UserID, stay, occupants, l.Capacity(), uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				conflictStage = "constraint"
				return booking.ErrOverlappingBooking
			}
			return err
		}
		created = b
		return nil
	})
	if conflictStage != "" {
		uc.observer.ObserveBookingConflict(conflictStage)
	}
	if err != nil {
		return nil, err
	}

	view := queries.NewBookingView(created)
	publish(ctx, uc.events, shared.Event{
		Type:       shared.EventBookingCreated,
		Key:        created.ListingID().String(),
		OccurredAt: created.CreatedAt(),
		Payload:    view,
	})
	return view, nil
}

func listingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return listing.ErrListingNotFound
	}
	return err
}
