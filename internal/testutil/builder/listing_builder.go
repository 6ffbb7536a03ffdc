//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID        uuid.UUID
	HostID    uuid.UUID
	Capacity  int
	Country   string
	City      string
	Price     float64
	Rating    review.Summary
	CreatedAt time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:        uuid.New(),
		HostID:    uuid.New(),
		Capacity:  4,
		Country:   "Spain",
		City:      "Madrid",
		Price:     120,
		CreatedAt: time.Now(),
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) WithCapacity(n int) *ListingBuilder {
	l.Capacity = n
	return l
}

func (l *ListingBuilder) WithLocation(country, city string) *ListingBuilder {
	l.Country = country
	l.City = city
	return l
}

func (l *ListingBuilder) WithRating(count int, average float64) *ListingBuilder {
	l.Rating = review.Summary{Count: count, Average: average}
	return l
}

// BuildDomain validates like a create request; ID is freshly generated.
func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	return listing.NewListing(l.HostID, l.Capacity, l.Country, l.City, l.Price, l.CreatedAt)
}

// BuildStored rebuilds a persisted listing with the builder's ID and rating.
func (l *ListingBuilder) BuildStored() *listing.Listing {
	return listing.Reconstruct(l.ID, l.HostID, l.Capacity, l.Country, l.City, l.Price, l.Rating, l.CreatedAt)
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:            l.ID,
		HostID:        l.HostID,
		Capacity:      l.Capacity,
		Country:       l.Country,
		City:          l.City,
		Price:         l.Price,
		AverageRating: l.Rating.Average,
		TotalReviews:  l.Rating.Count,
		CreatedAt:     l.CreatedAt,
	}
}

func (l *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	price := l.Price
	return reqdto.CreateListingRequest{
		NoOfPeople: l.Capacity,
		Country:    l.Country,
		City:       l.City,
		Price:      &price,
	}
}
