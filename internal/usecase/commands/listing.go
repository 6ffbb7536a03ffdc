package commands

import (
	"context"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"
)

type CreateListingRequest struct {
	Capacity int
	Country  string
	City     string
	Price    float64
}

type ListingCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateListingRequest) (*queries.ListingView, error)
}

type listingCommandsImpl struct {
	uow    shared.UnitOfWork
	events shared.EventPublisher
	clock  clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, events shared.EventPublisher, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, events: events, clock: clk}
}

func (uc *listingCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateListingRequest) (*queries.ListingView, error) {
	if err := actor.Require(user.RoleHost); err != nil {
		return nil, err
	}

	l, err := listing.NewListing(actor.UserID, req.Capacity, req.Country, req.City, req.Price, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Listings().Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	view := queries.NewListingView(l)
	publish(ctx, uc.events, shared.Event{
		Type:       shared.EventListingCreated,
		Key:        l.ID().String(),
		OccurredAt: l.CreatedAt(),
		Payload:    view,
	})
	return view, nil
}
