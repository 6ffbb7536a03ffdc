package queries

import (
	"context"
	"log/slog"
	"strconv"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	"staybook/internal/infra"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type ReviewReadStore interface {
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*ReviewView, error)
	RatingsForListing(ctx context.Context, listingID uuid.UUID) ([]review.Record, error)
}

type ListingReviews struct {
	Summary review.Summary `json:"summary"`
	Data    []*ReviewView  `json:"data"`
}

type ReviewQueries interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) (*ListingReviews, error)
	Summary(ctx context.Context, listingID uuid.UUID) (review.Summary, error)
}

type reviewQueriesImpl struct {
	reviews  ReviewReadStore
	listings ListingReadStore
	cache    shared.RatingCache
	group    singleflight.Group
}

func NewReviewQueries(reviews ReviewReadStore, listings ListingReadStore, cache shared.RatingCache) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, listings: listings, cache: cache}
}

func (q *reviewQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID) (*ListingReviews, error) {
	if _, err := q.listings.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, listing.ErrListingNotFound
		}
		return nil, err
	}

	out := &ListingReviews{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := q.reviews.FindByListing(gctx, listingID)
		out.Data = rows
		return err
	})
	g.Go(func() error {
		s, err := q.Summary(gctx, listingID)
		out.Summary = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []*ReviewView{}
	}
	return out, nil
}

// Summary aggregates the listing's ratings. Concurrent misses for one listing and
// cache generation share a single store read; cache failures degrade to computing
// without the cache.
func (q *reviewQueriesImpl) Summary(ctx context.Context, listingID uuid.UUID) (review.Summary, error) {
	cached, err := q.cache.Get(ctx, listingID)
	if err != nil {
		slog.Warn("rating cache read failed", "listing_id", listingID, "error", err.Error())
	} else if cached.Hit {
		return cached.Summary, nil
	}

	// A read that started before an invalidation must not be shared with one after it.
	flight := listingID.String() + ":" + strconv.FormatInt(cached.Generation, 10)
	v, err, _ := q.group.Do(flight, func() (any, error) {
		records, err := q.reviews.RatingsForListing(ctx, listingID)
		if err != nil {
			return review.Summary{}, err
		}
		s := review.SummarizeListing(listingID, records)
		if err := q.cache.Set(ctx, listingID, cached.Generation, s); err != nil {
			slog.Warn("rating cache write failed", "listing_id", listingID, "error", err.Error())
		}
		return s, nil
	})
	if err != nil {
		return review.Summary{}, err
	}
	return v.(review.Summary), nil
}
