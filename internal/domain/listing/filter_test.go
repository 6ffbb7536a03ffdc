//go:build unit

package listing_test

import (
	"testing"
	"time"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(capacity int, country, city string, price, rating float64) *listing.Listing {
	return listing.Reconstruct(uuid.New(), uuid.New(), capacity, country, city, price,
		review.Summary{Count: 1, Average: rating}, time.Now())
}

func TestFilterMatches(t *testing.T) {
	l := sample(4, "Spain", "Madrid", 120, 4.5)

	cases := []struct {
		name   string
		filter listing.Filter
		want   bool
	}{
		{"empty filter matches everything", listing.Filter{}, true},
		{"country", listing.Filter{Country: ptr.Of("Spain")}, true},
		{"country mismatch", listing.Filter{Country: ptr.Of("France")}, false},
		{"city", listing.Filter{City: ptr.Of("Madrid")}, true},
		{"city is exact", listing.Filter{City: ptr.Of("madrid")}, false},
		{"capacity at limit", listing.Filter{MinCapacity: ptr.Of(4)}, true},
		{"capacity above", listing.Filter{MinCapacity: ptr.Of(5)}, false},
		{"price bounds inclusive", listing.Filter{MinPrice: ptr.Of(120.0), MaxPrice: ptr.Of(120.0)}, true},
		{"below min price", listing.Filter{MinPrice: ptr.Of(121.0)}, false},
		{"above max price", listing.Filter{MaxPrice: ptr.Of(119.99)}, false},
		{"min rating", listing.Filter{MinRating: 4.5}, true},
		{"min rating above", listing.Filter{MinRating: 4.6}, false},
		{"other host", listing.Filter{HostID: ptr.Of(uuid.New())}, false},
		{"own host", listing.Filter{HostID: ptr.Of(l.HostID())}, true},
		{"excluded id", listing.Filter{ExcludeIDs: []uuid.UUID{l.ID()}}, false},
		{"conjunction", listing.Filter{Country: ptr.Of("Spain"), MinCapacity: ptr.Of(2), MaxPrice: ptr.Of(200.0)}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.filter.Matches(l))
		})
	}

	t.Run("zero min rating matches unrated listings", func(t *testing.T) {
		unrated := listing.Reconstruct(uuid.New(), uuid.New(), 1, "Spain", "Madrid", 10, review.Summary{}, time.Now())
		assert.True(t, listing.Filter{}.Matches(unrated))
		assert.False(t, listing.Filter{MinRating: 1}.Matches(unrated))
	})
}

func TestFilterNormalize(t *testing.T) {
	t.Run("blank text predicates are dropped", func(t *testing.T) {
		f, err := listing.Filter{Country: ptr.Of("  "), City: ptr.Of(" Lisbon ")}.Normalize()
		require.NoError(t, err)
		assert.Nil(t, f.Country)
		assert.Equal(t, "Lisbon", *f.City)
	})

	cases := []struct {
		name   string
		filter listing.Filter
		errIs  error
	}{
		{"zero people", listing.Filter{MinCapacity: ptr.Of(0)}, listing.ErrInvalidMinPeople},
		{"negative price", listing.Filter{MinPrice: ptr.Of(-1.0)}, listing.ErrInvalidPriceBound},
		{"inverted price range", listing.Filter{MinPrice: ptr.Of(10.0), MaxPrice: ptr.Of(5.0)}, listing.ErrInvalidPriceRange},
		{"rating too high", listing.Filter{MinRating: 5.5}, listing.ErrInvalidMinRating},
		{"negative rating", listing.Filter{MinRating: -1}, listing.ErrInvalidMinRating},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.filter.Normalize()
			require.Error(t, err)
			assert.True(t, errs.Is(err, c.errIs))
			assert.Equal(t, errs.ErrInvalidInput, errs.Kind(err))
		})
	}
}
