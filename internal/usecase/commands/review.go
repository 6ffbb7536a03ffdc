package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/review"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrStayNotFound = errs.NewKind("stay not found", errs.ErrNotFound)

// CreateReviewRequest names the reviewed stay directly (StayID) or through the
// listing the guest stayed at (ListingID). At least one is required.
type CreateReviewRequest struct {
	StayID    *uuid.UUID
	ListingID *uuid.UUID
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateReviewRequest) (*queries.ReviewView, error)
}

type reviewCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.RatingCache
	events shared.EventPublisher
	clock  clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, cache shared.RatingCache, events shared.EventPublisher, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, cache: cache, events: events, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateReviewRequest) (*queries.ReviewView, error) {
	if err := actor.Require(user.RoleGuest); err != nil {
		return nil, err
	}
	if _, err := review.NewRating(req.Rating); err != nil {
		return nil, err
	}
	if _, err := review.NewComment(req.Comment); err != nil {
		return nil, err
	}
	target, err := review.NewTarget(req.StayID, req.ListingID)
	if err != nil {
		return nil, err
	}

	var (
		created *review.Review
		summary review.Summary
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref := target.ListingID()
		if target.IsStay() {
			ref = target.StayID()
		}
		bookings, err := tx.Bookings().FindForUser(ctx, actor.UserID, ref)
		if err != nil {
			return err
		}
		stay, ok := review.QualifyingBooking(actor.UserID, target, bookings)
		if !ok {
			return uc.ineligible(ctx, tx, target)
		}

		l, err := tx.Listings().LockByID(ctx, stay.ListingID())
		if err != nil {
			return listingErr(err)
		}

		r, err := review.NewReview(l.ID(), stay.ID(), actor.UserID, req.Rating, req.Comment, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return review.ErrReviewAlreadyExists
			}
			return err
		}

		records, err := tx.Reviews().RatingsForListing(ctx, l.ID())
		if err != nil {
			return err
		}
		summary = review.SummarizeListing(l.ID(), records)
		if err := tx.Listings().UpdateRating(ctx, l.ID(), summary); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, created.ListingID()); err != nil {
		slog.Warn("failed to invalidate rating cache", "listing_id", created.ListingID(), "error", err.Error())
	}

	view := queries.NewReviewView(created)
	publish(ctx, uc.events, shared.Event{
		Type:       shared.EventReviewCreated,
		Key:        created.ListingID().String(),
		OccurredAt: created.CreatedAt(),
		Payload: map[string]any{
			"review":  view,
			"summary": summary,
		},
	})
	return view, nil
}

// ineligible tells a reference to nothing (NotFound) apart from a reference to
// something the user never booked (Forbidden).
func (uc *reviewCommandsImpl) ineligible(ctx context.Context, tx shared.Tx, target review.Target) error {
	if target.IsStay() {
		if _, err := tx.Bookings().FindByID(ctx, target.StayID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStayNotFound
			}
			return err
		}
		return review.ErrNotEligible
	}
	if _, err := tx.Listings().LockByID(ctx, target.ListingID()); err != nil {
		return listingErr(err)
	}
	return review.ErrNotEligible
}
