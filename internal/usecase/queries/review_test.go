//go:build unit

package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/builder"
	"staybook/internal/testutil/mock/queriesmock"
	"staybook/internal/testutil/mock/sharedmock"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	reviews  *queriesmock.MockReviewReadStore
	listings *queriesmock.MockListingReadStore
	cache    *sharedmock.MockRatingCache
	q        queries.ReviewQueries
}

func (s *ReviewQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reviews = queriesmock.NewMockReviewReadStore(s.ctrl)
	s.listings = queriesmock.NewMockListingReadStore(s.ctrl)
	s.cache = sharedmock.NewMockRatingCache(s.ctrl)
	s.q = queries.NewReviewQueries(s.reviews, s.listings, s.cache)
}

func (s *ReviewQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReviewQueriesTestSuite))
}

func (s *ReviewQueriesTestSuite) TestSummary() {
	ctx := context.Background()

	s.Run("success: cache hit skips the store", func() {
		id := uuid.New()
		cached := review.Summary{Count: 4, Average: 4.25}
		s.cache.EXPECT().Get(gomock.Any(), id).Return(shared.CachedSummary{Summary: cached, Generation: 2, Hit: true}, nil)

		got, err := s.q.Summary(ctx, id)
		s.Require().NoError(err)
		s.Equal(cached, got)
	})

	s.Run("success: miss computes from both record shapes and fills the cache", func() {
		id := uuid.New()
		records := []review.Record{
			{ListingID: id, Rating: 4},
			{StayListingID: id, Rating: 5},
			{ListingID: id, Rating: 4},
		}
		want := review.Summary{Count: 3, Average: 4.33}

		s.cache.EXPECT().Get(gomock.Any(), id).Return(shared.CachedSummary{Generation: 3}, nil)
		s.reviews.EXPECT().RatingsForListing(gomock.Any(), id).Return(records, nil)
		s.cache.EXPECT().Set(gomock.Any(), id, int64(3), want).Return(nil)

		got, err := s.q.Summary(ctx, id)
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("success: no reviews is zero count and zero average", func() {
		id := uuid.New()
		s.cache.EXPECT().Get(gomock.Any(), id).Return(shared.CachedSummary{}, nil)
		s.reviews.EXPECT().RatingsForListing(gomock.Any(), id).Return(nil, nil)
		s.cache.EXPECT().Set(gomock.Any(), id, int64(0), review.Summary{}).Return(nil)

		got, err := s.q.Summary(ctx, id)
		s.Require().NoError(err)
		s.Equal(review.Summary{}, got)
	})

	s.Run("success: cache errors fall back to the store", func() {
		id := uuid.New()
		s.cache.EXPECT().Get(gomock.Any(), id).Return(shared.CachedSummary{}, errors.New("redis down"))
		s.reviews.EXPECT().RatingsForListing(gomock.Any(), id).Return([]review.Record{{ListingID: id, Rating: 3}}, nil)
		s.cache.EXPECT().Set(gomock.Any(), id, int64(0), gomock.Any()).Return(errors.New("redis down"))

		got, err := s.q.Summary(ctx, id)
		s.Require().NoError(err)
		s.Equal(review.Summary{Count: 1, Average: 3}, got)
	})

	s.Run("success: concurrent misses share one store read", func() {
		id := uuid.New()
		release := make(chan struct{})
		s.cache.EXPECT().Get(gomock.Any(), id).Return(shared.CachedSummary{}, nil).Times(5)
		s.reviews.EXPECT().RatingsForListing(gomock.Any(), id).
			DoAndReturn(func(context.Context, uuid.UUID) ([]review.Record, error) {
				<-release
				return []review.Record{{ListingID: id, Rating: 5}}, nil
			}).MinTimes(1).MaxTimes(5)
		s.cache.EXPECT().Set(gomock.Any(), id, int64(0), gomock.Any()).Return(nil).MinTimes(1).MaxTimes(5)

		var wg sync.WaitGroup
		results := make([]review.Summary, 5)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], _ = s.q.Summary(ctx, id)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, r := range results {
			s.Equal(review.Summary{Count: 1, Average: 5}, r)
		}
	})

	s.Run("error: store failure", func() {
		id := uuid.New()
		s.cache.EXPECT().Get(gomock.Any(), id).Return(shared.CachedSummary{}, nil)
		s.reviews.EXPECT().RatingsForListing(gomock.Any(), id).Return(nil, errors.New("db down"))

		_, err := s.q.Summary(ctx, id)
		s.Error(err)
	})
}

func (s *ReviewQueriesTestSuite) TestListByListing() {
	ctx := context.Background()

	s.Run("success: reviews with their summary", func() {
		l := builder.NewListingBuilder().BuildView()
		r := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.ListingID = l.ID }).BuildView()

		s.listings.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		s.reviews.EXPECT().FindByListing(gomock.Any(), l.ID).Return([]*queries.ReviewView{r}, nil)
		s.cache.EXPECT().Get(gomock.Any(), l.ID).Return(shared.CachedSummary{Summary: review.Summary{Count: 1, Average: 5}, Hit: true}, nil)

		got, err := s.q.ListByListing(ctx, l.ID)
		s.Require().NoError(err)
		s.Equal(review.Summary{Count: 1, Average: 5}, got.Summary)
		s.Equal([]*queries.ReviewView{r}, got.Data)
	})

	s.Run("success: listing without reviews", func() {
		l := builder.NewListingBuilder().BuildView()

		s.listings.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		s.reviews.EXPECT().FindByListing(gomock.Any(), l.ID).Return(nil, nil)
		s.cache.EXPECT().Get(gomock.Any(), l.ID).Return(shared.CachedSummary{Hit: true}, nil)

		got, err := s.q.ListByListing(ctx, l.ID)
		s.Require().NoError(err)
		s.NotNil(got.Data)
		s.Empty(got.Data)
		s.Equal(review.Summary{}, got.Summary)
	})

	s.Run("error: unknown listing", func() {
		id := uuid.New()
		s.listings.EXPECT().FindByID(gomock.Any(), id).Return(nil, &infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.q.ListByListing(ctx, id)
		s.True(errs.Is(err, listing.ErrListingNotFound))
	})
}
