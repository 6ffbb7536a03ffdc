package listing

import (
	"strings"
	"time"

	"staybook/internal/domain/review"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errs.NewKind("noOfPeople must be a positive integer", errs.ErrInvalidInput)
	ErrInvalidPrice    = errs.NewKind("price must not be negative", errs.ErrInvalidInput)
	ErrMissingCountry  = errs.NewKind("country is required", errs.ErrInvalidInput)
	ErrMissingCity     = errs.NewKind("city is required", errs.ErrInvalidInput)
	ErrListingNotFound = errs.NewKind("listing not found", errs.ErrNotFound)
)

type Listing struct {
	id        uuid.UUID
	hostID    uuid.UUID
	capacity  int
	country   string
	city      string
	price     float64
	rating    review.Summary
	createdAt time.Time
}

func NewListing(hostID uuid.UUID, capacity int, country, city string, price float64, now time.Time) (*Listing, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, ErrMissingCountry
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrMissingCity
	}
	return &Listing{
		id:        uuid.New(),
		hostID:    hostID,
		capacity:  capacity,
		country:   country,
		city:      city,
		price:     price,
		createdAt: now,
	}, nil
}

func Reconstruct(id, hostID uuid.UUID, capacity int, country, city string, price float64, rating review.Summary, createdAt time.Time) *Listing {
	return &Listing{
		id:        id,
		hostID:    hostID,
		capacity:  capacity,
		country:   country,
		city:      city,
		price:     price,
		rating:    rating,
		createdAt: createdAt,
	}
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) HostID() uuid.UUID      { return l.hostID }
func (l *Listing) Capacity() int          { return l.capacity }
func (l *Listing) Country() string        { return l.country }
func (l *Listing) City() string           { return l.city }
func (l *Listing) Price() float64         { return l.price }
func (l *Listing) Rating() review.Summary { return l.rating }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }

// ApplyRating replaces the denormalized aggregate. It is the only mutation a listing has.
func (l *Listing) ApplyRating(s review.Summary) {
	l.rating = s
}
