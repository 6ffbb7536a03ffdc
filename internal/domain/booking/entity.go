package booking

import (
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOverCapacity = errs.NewKind("number of occupants exceeds the listing capacity", errs.ErrInvalidInput)

type Booking struct {
	id        uuid.UUID
	listingID uuid.UUID
	userID    uuid.UUID
	stay      DateRange
	occupants Occupants
	createdAt time.Time
}

// NewBooking validates the request against the listing capacity. Availability is
// checked separately with CanBook because it needs the stored stays.
func NewBooking(listingID, userID uuid.UUID, stay DateRange, occupants Occupants, capacity int, now time.Time) (*Booking, error) {
	if stay.IsEmpty() {
		return nil, ErrInvalidDateRange
	}
	if occupants.Count() == 0 {
		return nil, ErrNoOccupants
	}
	if occupants.Count() > capacity {
		return nil, ErrOverCapacity
	}
	return &Booking{
		id:        uuid.New(),
		listingID: listingID,
		userID:    userID,
		stay:      stay,
		occupants: occupants,
		createdAt: now,
	}, nil
}

func Reconstruct(id, listingID, userID uuid.UUID, stay DateRange, names []string, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		listingID: listingID,
		userID:    userID,
		stay:      stay,
		occupants: Occupants{names: names},
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ListingID() uuid.UUID { return b.listingID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Stay() DateRange      { return b.stay }
func (b *Booking) Occupants() Occupants { return b.occupants }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) Slot() Slot {
	return Slot{ListingID: b.listingID, Stay: b.stay}
}
