//go:build unit

package review_test

import (
	"testing"

	"staybook/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    review.Summary
	}{
		{"empty set", nil, review.Summary{Count: 0, Average: 0}},
		{"five four three", []int{5, 4, 3}, review.Summary{Count: 3, Average: 4}},
		{"single", []int{2}, review.Summary{Count: 1, Average: 2}},
		{"repeating third rounds down", []int{5, 4, 4}, review.Summary{Count: 3, Average: 4.33}},
		{"two thirds rounds up", []int{5, 5, 4}, review.Summary{Count: 3, Average: 4.67}},
		{"exact half hundredth rounds up", []int{5, 5, 5, 5, 4, 4, 4, 1}, review.Summary{Count: 8, Average: 4.13}},
		{"one fifth", []int{1, 1, 1, 1, 2}, review.Summary{Count: 5, Average: 1.2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, review.Summarize(c.ratings))
		})
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	ratings := []int{3, 5, 1, 4}
	first := review.Summarize(ratings)
	second := review.Summarize(ratings)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{3, 5, 1, 4}, ratings, "input must not be mutated")
}

func TestSummarizeListingNormalizesReferences(t *testing.T) {
	listingID, other := uuid.New(), uuid.New()
	records := []review.Record{
		{ListingID: listingID, Rating: 5},
		{StayListingID: listingID, Rating: 3},
		{ListingID: other, Rating: 1},
		{StayListingID: other, Rating: 1},
		{ListingID: listingID, StayListingID: other, Rating: 4},
	}

	assert.Equal(t, []int{5, 3, 4}, review.RatingsFor(listingID, records))
	assert.Equal(t, review.Summary{Count: 3, Average: 4}, review.SummarizeListing(listingID, records))
	assert.Equal(t, review.Summary{}, review.SummarizeListing(uuid.New(), records))
}
