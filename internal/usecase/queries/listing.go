package queries

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ListingReadStore interface {
	Find(ctx context.Context, f listing.Filter, skip, limit int) ([]*ListingView, error)
	Count(ctx context.Context, f listing.Filter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

// AvailabilityQuery asks for listings free for the whole stay.
type AvailabilityQuery struct {
	Stay   booking.DateRange
	Filter listing.Filter
}

type ListingQueries interface {
	Search(ctx context.Context, f listing.Filter, p PageRequest) (*Page[*ListingView], error)
	Available(ctx context.Context, q AvailabilityQuery, p PageRequest) (*Page[*ListingView], error)
	// Report is the rating-ordered listing report; hosts only see their own listings.
	Report(ctx context.Context, actor shared.Actor, f listing.Filter, p PageRequest) (*Page[*ListingView], error)
	AdminList(ctx context.Context, actor shared.Actor, f listing.Filter, p PageRequest) (*Page[*ListingView], error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	listings ListingReadStore
	bookings BookingReadStore
}

func NewListingQueries(listings ListingReadStore, bookings BookingReadStore) ListingQueries {
	return &listingQueriesImpl{listings: listings, bookings: bookings}
}

func (q *listingQueriesImpl) Search(ctx context.Context, f listing.Filter, p PageRequest) (*Page[*ListingView], error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	return q.page(ctx, f, p)
}

func (q *listingQueriesImpl) Available(ctx context.Context, aq AvailabilityQuery, p PageRequest) (*Page[*ListingView], error) {
	if aq.Stay.IsEmpty() {
		return nil, booking.ErrInvalidDateRange
	}
	f, err := aq.Filter.Normalize()
	if err != nil {
		return nil, err
	}

	slots, err := q.bookings.FindOverlapping(ctx, nil, aq.Stay)
	if err != nil {
		return nil, err
	}
	f.ExcludeIDs = append(f.ExcludeIDs, booking.OccupiedListings(aq.Stay, slots)...)

	return q.page(ctx, f, p)
}

func (q *listingQueriesImpl) Report(ctx context.Context, actor shared.Actor, f listing.Filter, p PageRequest) (*Page[*ListingView], error) {
	if err := actor.Require(user.RoleHost, user.RoleAdmin); err != nil {
		return nil, err
	}
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	if actor.Role == user.RoleHost {
		hostID := actor.UserID
		f.HostID = &hostID
	}
	f.Sort = listing.SortRating
	return q.page(ctx, f, p)
}

func (q *listingQueriesImpl) AdminList(ctx context.Context, actor shared.Actor, f listing.Filter, p PageRequest) (*Page[*ListingView], error) {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return nil, err
	}
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	f.Sort = listing.SortRating
	return q.page(ctx, f, p)
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	v, err := q.listings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, listing.ErrListingNotFound
		}
		return nil, err
	}
	return v, nil
}

// page counts the full result set and fetches the requested window concurrently.
func (q *listingQueriesImpl) page(ctx context.Context, f listing.Filter, p PageRequest) (*Page[*ListingView], error) {
	var (
		total int
		rows  []*ListingView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := q.listings.Count(gctx, f)
		total = n
		return err
	})
	g.Go(func() error {
		r, err := q.listings.Find(gctx, f, p.Offset(), p.Size)
		rows = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewPage(p, total, rows), nil
}
