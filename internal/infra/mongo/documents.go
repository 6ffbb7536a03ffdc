package mongo

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	"staybook/internal/domain/user"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Ids are stored as their string form and times as unix milliseconds.

type listingDocument struct {
	ID            string  `bson:"_id"`
	HostID        string  `bson:"host_id"`
	Capacity      int     `bson:"capacity"`
	Country       string  `bson:"country"`
	City          string  `bson:"city"`
	Price         float64 `bson:"price"`
	AverageRating float64 `bson:"average_rating"`
	TotalReviews  int     `bson:"total_reviews"`
	BookingSeq    int64   `bson:"booking_seq"`
	CreatedAt     int64   `bson:"created_at"`
}

func newListingDocument(l *listing.Listing) listingDocument {
	return listingDocument{
		ID:            l.ID().String(),
		HostID:        l.HostID().String(),
		Capacity:      l.Capacity(),
		Country:       l.Country(),
		City:          l.City(),
		Price:         l.Price(),
		AverageRating: l.Rating().Average,
		TotalReviews:  l.Rating().Count,
		CreatedAt:     l.CreatedAt().UnixMilli(),
	}
}

func (d listingDocument) toDomain() *listing.Listing {
	return listing.Reconstruct(
		parseID(d.ID), parseID(d.HostID), d.Capacity, d.Country, d.City, d.Price,
		review.Summary{Count: d.TotalReviews, Average: d.AverageRating},
		fromMillis(d.CreatedAt),
	)
}

func (d listingDocument) toView() *queries.ListingView {
	return &queries.ListingView{
		ID:            parseID(d.ID),
		HostID:        parseID(d.HostID),
		Capacity:      d.Capacity,
		Country:       d.Country,
		City:          d.City,
		Price:         d.Price,
		AverageRating: d.AverageRating,
		TotalReviews:  d.TotalReviews,
		CreatedAt:     fromMillis(d.CreatedAt),
	}
}

type bookingDocument struct {
	ID            string   `bson:"_id"`
	ListingID     string   `bson:"listing_id"`
	UserID        string   `bson:"user_id"`
	From          int64    `bson:"from"`
	To            int64    `bson:"to"`
	NamesOfPeople []string `bson:"names_of_people"`
	CreatedAt     int64    `bson:"created_at"`
}

func newBookingDocument(b *booking.Booking) bookingDocument {
	return bookingDocument{
		ID:            b.ID().String(),
		ListingID:     b.ListingID().String(),
		UserID:        b.UserID().String(),
		From:          b.Stay().From().UnixMilli(),
		To:            b.Stay().To().UnixMilli(),
		NamesOfPeople: b.Occupants().Names(),
		CreatedAt:     b.CreatedAt().UnixMilli(),
	}
}

func (d bookingDocument) stay() booking.DateRange {
	return booking.RestoreDateRange(fromMillis(d.From), fromMillis(d.To))
}

func (d bookingDocument) toDomain() *booking.Booking {
	return booking.Reconstruct(parseID(d.ID), parseID(d.ListingID), parseID(d.UserID),
		d.stay(), d.NamesOfPeople, fromMillis(d.CreatedAt))
}

func (d bookingDocument) slot() booking.Slot {
	return booking.Slot{ListingID: parseID(d.ListingID), Stay: d.stay()}
}

type reviewDocument struct {
	ID        string `bson:"_id"`
	ListingID string `bson:"listing_id,omitempty"`
	BookingID string `bson:"booking_id"`
	UserID    string `bson:"user_id"`
	Rating    int    `bson:"rating"`
	Comment   string `bson:"comment"`
	CreatedAt int64  `bson:"created_at"`
}

func newReviewDocument(r *review.Review) reviewDocument {
	return reviewDocument{
		ID:        r.ID().String(),
		ListingID: r.ListingID().String(),
		BookingID: r.BookingID().String(),
		UserID:    r.UserID().String(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment().String(),
		CreatedAt: r.CreatedAt().UnixMilli(),
	}
}

// reviewWithStay is a review joined with its booking by the ratings pipeline.
type reviewWithStay struct {
	reviewDocument `bson:",inline"`
	Stay           bookingDocument `bson:"stay"`
}

func (d reviewWithStay) record() review.Record {
	return review.Record{
		ListingID:     parseID(d.ListingID),
		StayListingID: parseID(d.Stay.ListingID),
		Rating:        d.Rating,
	}
}

func (d reviewWithStay) toView() *queries.ReviewView {
	listingID := parseID(d.ListingID)
	if listingID == uuid.Nil {
		listingID = parseID(d.Stay.ListingID)
	}
	return &queries.ReviewView{
		ID:        parseID(d.ID),
		ListingID: listingID,
		BookingID: parseID(d.BookingID),
		UserID:    parseID(d.UserID),
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: fromMillis(d.CreatedAt),
	}
}

type userDocument struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	LastLogin    *int64 `bson:"last_login,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
}

func newUserDocument(u *user.User) userDocument {
	doc := userDocument{
		ID:           u.ID().String(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
	if u.LastLogin() != nil {
		ms := u.LastLogin().UnixMilli()
		doc.LastLogin = &ms
	}
	return doc
}

func (d userDocument) toView() *queries.AuthorizedUserView {
	v := &queries.AuthorizedUserView{
		ID:        parseID(d.ID),
		Email:     d.Email,
		Role:      d.Role,
		CreatedAt: fromMillis(d.CreatedAt),
	}
	if d.LastLogin != nil {
		t := fromMillis(*d.LastLogin)
		v.LastLogin = &t
	}
	return v
}

// parseID maps a missing or malformed id to uuid.Nil.
func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
