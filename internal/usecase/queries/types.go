package queries

import (
	"time"

	"github.com/google/uuid"
)

// ListingView is the read model of a listing. Capacity is exposed as noOfPeople.
type ListingView struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"hostId"`
	Capacity      int       `json:"noOfPeople"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	Price         float64   `json:"price"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	ListingID     uuid.UUID `json:"listingId"`
	UserID        uuid.UUID `json:"userId"`
	DateFrom      time.Time `json:"dateFrom"`
	DateTo        time.Time `json:"dateTo"`
	NamesOfPeople []string  `json:"namesOfPeople"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listingId"`
	BookingID uuid.UUID `json:"stayId"`
	UserID    uuid.UUID `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
