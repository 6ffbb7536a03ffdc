package listing

import (
	"strings"

	"staybook/internal/domain/review"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriceRange = errs.NewKind("minPrice must not exceed maxPrice", errs.ErrInvalidInput)
	ErrInvalidMinRating  = errs.NewKind("minRating must be between 0 and 5", errs.ErrInvalidInput)
	ErrInvalidMinPeople  = errs.NewKind("noOfPeople must be at least 1", errs.ErrInvalidInput)
	ErrInvalidPriceBound = errs.NewKind("price bounds must not be negative", errs.ErrInvalidInput)
)

type Sort int

const (
	// SortCreated orders by creation time, then id.
	SortCreated Sort = iota
	// SortRating orders by average rating descending, then id ascending.
	SortRating
)

// Filter is the one predicate shape for every listing query. A nil field or a zero
// MinRating means "no constraint".
type Filter struct {
	Country     *string
	City        *string
	MinCapacity *int
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   float64
	HostID      *uuid.UUID
	// ExcludeIDs removes listings from the result, used for occupied listings.
	ExcludeIDs []uuid.UUID
	Sort       Sort
}

// Normalize trims text predicates, drops empty ones and validates bounds.
func (f Filter) Normalize() (Filter, error) {
	f.Country = trimmed(f.Country)
	f.City = trimmed(f.City)
	if f.MinCapacity != nil && *f.MinCapacity < 1 {
		return Filter{}, ErrInvalidMinPeople
	}
	if (f.MinPrice != nil && *f.MinPrice < 0) || (f.MaxPrice != nil && *f.MaxPrice < 0) {
		return Filter{}, ErrInvalidPriceBound
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return Filter{}, ErrInvalidPriceRange
	}
	if f.MinRating < 0 || f.MinRating > review.MaxRating {
		return Filter{}, ErrInvalidMinRating
	}
	return f, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (f Filter) HasRatingFilter() bool {
	return f.MinRating > 0
}

// Matches evaluates the predicates in memory. The stores translate the same
// predicates into their query languages; this is the reference semantics.
func (f Filter) Matches(l *Listing) bool {
	if f.Country != nil && l.country != *f.Country {
		return false
	}
	if f.City != nil && l.city != *f.City {
		return false
	}
	if f.MinCapacity != nil && l.capacity < *f.MinCapacity {
		return false
	}
	if f.MinPrice != nil && l.price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.price > *f.MaxPrice {
		return false
	}
	if f.HasRatingFilter() && l.rating.Average < f.MinRating {
		return false
	}
	if f.HostID != nil && l.hostID != *f.HostID {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if id == l.id {
			return false
		}
	}
	return true
}
