package queries

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
)

func NewListingView(l *listing.Listing) *ListingView {
	return &ListingView{
		ID:            l.ID(),
		HostID:        l.HostID(),
		Capacity:      l.Capacity(),
		Country:       l.Country(),
		City:          l.City(),
		Price:         l.Price(),
		AverageRating: l.Rating().Average,
		TotalReviews:  l.Rating().Count,
		CreatedAt:     l.CreatedAt(),
	}
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:            b.ID(),
		ListingID:     b.ListingID(),
		UserID:        b.UserID(),
		DateFrom:      b.Stay().From(),
		DateTo:        b.Stay().To(),
		NamesOfPeople: b.Occupants().Names(),
		CreatedAt:     b.CreatedAt(),
	}
}

func NewReviewView(r *review.Review) *ReviewView {
	return &ReviewView{
		ID:        r.ID(),
		ListingID: r.ListingID(),
		BookingID: r.BookingID(),
		UserID:    r.UserID(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment().String(),
		CreatedAt: r.CreatedAt(),
	}
}
