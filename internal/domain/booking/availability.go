package booking

import (
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOverlappingBooking = errs.NewKind("listing is already booked for the requested dates", errs.ErrConflict)

// Slot is the part of a booking that availability cares about.
type Slot struct {
	ListingID uuid.UUID
	Stay      DateRange
}

// CanBook is true when requested overlaps none of the listing's existing stays.
// Slots of other listings are ignored.
func CanBook(listingID uuid.UUID, requested DateRange, existing []Slot) bool {
	for _, s := range existing {
		if s.ListingID == listingID && s.Stay.Overlaps(requested) {
			return false
		}
	}
	return true
}

func CheckAvailability(listingID uuid.UUID, requested DateRange, existing []Slot) error {
	if !CanBook(listingID, requested, existing) {
		return ErrOverlappingBooking
	}
	return nil
}

// OccupiedListings returns, once each and in first-seen order, the listings that
// have a stay overlapping requested.
func OccupiedListings(requested DateRange, slots []Slot) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(slots))
	out := make([]uuid.UUID, 0, len(slots))
	for _, s := range slots {
		if !s.Stay.Overlaps(requested) {
			continue
		}
		if _, ok := seen[s.ListingID]; ok {
			continue
		}
		seen[s.ListingID] = struct{}{}
		out = append(out, s.ListingID)
	}
	return out
}
