package review

import "github.com/google/uuid"

// Summary is the rating aggregate attached to a listing.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Record is a stored rating together with whatever listing references it carries.
// Older records point at the listing directly; others only through their stay.
type Record struct {
	ListingID     uuid.UUID
	StayListingID uuid.UUID
	Rating        int
}

func (r Record) Listing() uuid.UUID {
	if r.ListingID != uuid.Nil {
		return r.ListingID
	}
	return r.StayListingID
}

// RatingsFor keeps the ratings of records that resolve to listingID.
func RatingsFor(listingID uuid.UUID, records []Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		if r.Listing() == listingID {
			out = append(out, r.Rating)
		}
	}
	return out
}

// Summarize returns the count and the mean rounded half-up to two decimals.
// The rounding is done on the exact fraction so 4.125 never becomes 4.12.
func Summarize(ratings []int) Summary {
	n := len(ratings)
	if n == 0 {
		return Summary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	// floor(100*sum/n + 1/2)
	hundredths := (200*sum + n) / (2 * n)
	return Summary{Count: n, Average: float64(hundredths) / 100}
}

func SummarizeListing(listingID uuid.UUID, records []Record) Summary {
	return Summarize(RatingsFor(listingID, records))
}
