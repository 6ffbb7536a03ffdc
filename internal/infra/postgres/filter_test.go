//go:build unit

package postgres

import (
	"testing"
	"time"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	"staybook/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListingSelectSQL(t *testing.T) {
	host := uuid.MustParse("7f2c1b7e-8d6a-4b55-9d8e-0a4c3c6f1f10")
	excluded := uuid.MustParse("0b1c2d3e-4f50-4617-8293-a4b5c6d7e8f9")

	cases := []struct {
		name     string
		filter   listing.Filter
		skip     int
		limit    int
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no predicates",
			limit:    10,
			wantSQL:  "SELECT " + listingColumns + " FROM listings ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2",
			wantArgs: []any{10, 0},
		},
		{
			name: "every predicate, rating order",
			filter: listing.Filter{
				Country:     ptr.Of("Spain"),
				City:        ptr.Of("Madrid"),
				MinCapacity: ptr.Of(3),
				MinPrice:    ptr.Of(50.0),
				MaxPrice:    ptr.Of(200.0),
				MinRating:   4,
				HostID:      &host,
				ExcludeIDs:  []uuid.UUID{excluded},
				Sort:        listing.SortRating,
			},
			skip:  20,
			limit: 10,
			wantSQL: "SELECT " + listingColumns + " FROM listings WHERE country = $1 AND city = $2" +
				" AND capacity >= $3 AND price >= $4 AND price <= $5 AND average_rating >= $6 AND host_id = $7" +
				" AND NOT (id = ANY($8::uuid[])) ORDER BY average_rating DESC, id ASC LIMIT $9 OFFSET $10",
			wantArgs: []any{"Spain", "Madrid", 3, 50.0, 200.0, 4.0, host, []string{excluded.String()}, 10, 20},
		},
		{
			name:     "zero min rating adds nothing",
			filter:   listing.Filter{MinRating: 0, City: ptr.Of("Porto")},
			limit:    5,
			wantSQL:  "SELECT " + listingColumns + " FROM listings WHERE city = $1 ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3",
			wantArgs: []any{"Porto", 5, 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := listingSelectSQL(tc.filter, tc.skip, tc.limit)
			assert.Equal(t, tc.wantSQL, sql)
			if diff := cmp.Diff(tc.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListingWhereLocationIsExact(t *testing.T) {
	stored := listing.Reconstruct(uuid.New(), uuid.New(), 2, "Turkey", "Izmir", 70, review.Summary{}, time.Now())

	for _, country := range []string{"Turkey", "TURKEY"} {
		t.Run(country, func(t *testing.T) {
			f := listing.Filter{Country: ptr.Of(country), City: ptr.Of("Izmir")}
			w := listingWhere(f)
			assert.Equal(t, " WHERE country = $1 AND city = $2", w.sql())
			assert.Equal(t, []any{country, "Izmir"}, w.args)
			assert.Equal(t, f.Matches(stored), w.args[0] == stored.Country())
		})
	}
}

func TestListingCountSQL(t *testing.T) {
	sql, args := listingCountSQL(listing.Filter{MinCapacity: ptr.Of(2)})
	assert.Equal(t, "SELECT count(*) FROM listings WHERE capacity >= $1", sql)
	assert.Equal(t, []any{2}, args)
}
