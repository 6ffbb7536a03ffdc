//go:build unit

package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/review"
	"staybook/internal/infra/cache"
	"staybook/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardObserver struct{}

func (discardObserver) ObserveCache(string, string) {}

// ratingsStore hands out a snapshot of the ratings. The first read blocks after
// taking its snapshot until release is closed.
type ratingsStore struct {
	mu      sync.Mutex
	ratings []int
	reads   int
	entered chan struct{}
	release chan struct{}
}

func (s *ratingsStore) set(ratings ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = ratings
}

func (s *ratingsStore) FindByListing(context.Context, uuid.UUID) ([]*queries.ReviewView, error) {
	return nil, nil
}

func (s *ratingsStore) RatingsForListing(_ context.Context, listingID uuid.UUID) ([]review.Record, error) {
	s.mu.Lock()
	s.reads++
	first := s.reads == 1
	records := make([]review.Record, len(s.ratings))
	for i, r := range s.ratings {
		records[i] = review.Record{ListingID: listingID, Rating: r}
	}
	s.mu.Unlock()

	if first {
		close(s.entered)
		<-s.release
	}
	return records, nil
}

func TestSummaryAfterInvalidationDuringRead(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	rc := cache.NewRatingCache(client, 5*time.Minute, discardObserver{})

	store := &ratingsStore{ratings: []int{5}, entered: make(chan struct{}), release: make(chan struct{})}
	q := queries.NewReviewQueries(store, nil, rc)

	stale := make(chan review.Summary, 1)
	go func() {
		s, err := q.Summary(ctx, id)
		assert.NoError(t, err)
		stale <- s
	}()
	<-store.entered

	// a review commits and invalidates while the first read is still in flight
	store.set(5, 1)
	require.NoError(t, rc.Invalidate(ctx, id))

	fresh, err := q.Summary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, review.Summary{Count: 2, Average: 3}, fresh)

	close(store.release)
	assert.Equal(t, review.Summary{Count: 1, Average: 5}, <-stale)

	later, err := q.Summary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, review.Summary{Count: 2, Average: 3}, later)

	cached, err := rc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, cached.Hit)
	assert.Equal(t, review.Summary{Count: 2, Average: 3}, cached.Summary)
}
