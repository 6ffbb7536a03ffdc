package review

import (
	"staybook/internal/domain/booking"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotEligible   = errs.NewKind("only guests who booked this stay can review it", errs.ErrForbidden)
	ErrMissingTarget = errs.NewKind("stayId or listingId is required", errs.ErrInvalidInput)
)

// Target names what is being reviewed: a specific stay, or a listing the user stayed at.
type Target struct {
	stayID    uuid.UUID
	listingID uuid.UUID
}

func NewTarget(stayID, listingID *uuid.UUID) (Target, error) {
	var t Target
	if stayID != nil {
		t.stayID = *stayID
	}
	if listingID != nil {
		t.listingID = *listingID
	}
	if t.stayID == uuid.Nil && t.listingID == uuid.Nil {
		return Target{}, ErrMissingTarget
	}
	return t, nil
}

func (t Target) StayID() uuid.UUID    { return t.stayID }
func (t Target) ListingID() uuid.UUID { return t.listingID }
func (t Target) IsStay() bool         { return t.stayID != uuid.Nil }

// References reports whether b is the stay named by t. When both a stay and a
// listing are given, the booking must match both.
func (t Target) References(b *booking.Booking) bool {
	if t.stayID != uuid.Nil && b.ID() != t.stayID {
		return false
	}
	if t.listingID != uuid.Nil && b.ListingID() != t.listingID {
		return false
	}
	return true
}

// QualifyingBooking returns the first of userBookings owned by userID that t references.
func QualifyingBooking(userID uuid.UUID, t Target, userBookings []*booking.Booking) (*booking.Booking, bool) {
	for _, b := range userBookings {
		if b.UserID() == userID && t.References(b) {
			return b, true
		}
	}
	return nil, false
}

func CanReview(userID uuid.UUID, t Target, userBookings []*booking.Booking) bool {
	_, ok := QualifyingBooking(userID, t, userBookings)
	return ok
}
