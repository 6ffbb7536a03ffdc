//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	UserID        uuid.UUID
	DateFrom      string
	DateTo        string
	NamesOfPeople []string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		ListingID:     uuid.New(),
		UserID:        uuid.New(),
		DateFrom:      "2024-07-01",
		DateTo:        "2024-07-05",
		NamesOfPeople: []string{"Ana", "Luis"},
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDates(from, to string) *BookingBuilder {
	b.DateFrom = from
	b.DateTo = to
	return b
}

func (b *BookingBuilder) WithNames(names ...string) *BookingBuilder {
	b.NamesOfPeople = names
	return b
}

// Stay panics on malformed dates; builders are only fed literals.
func (b *BookingBuilder) Stay() booking.DateRange {
	r, err := booking.ParseDateRange(b.DateFrom, b.DateTo)
	if err != nil {
		panic(err)
	}
	return r
}

// BuildStored rebuilds a persisted booking with the builder's ID.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.Reconstruct(b.ID, b.ListingID, b.UserID, b.Stay(), b.NamesOfPeople, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	stay := b.Stay()
	return &queries.BookingView{
		ID:            b.ID,
		ListingID:     b.ListingID,
		UserID:        b.UserID,
		DateFrom:      stay.From(),
		DateTo:        stay.To(),
		NamesOfPeople: b.NamesOfPeople,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ListingID:     b.ListingID,
		DateFrom:      b.DateFrom,
		DateTo:        b.DateTo,
		NamesOfPeople: b.NamesOfPeople,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID:     b.ListingID,
		DateFrom:      b.DateFrom,
		DateTo:        b.DateTo,
		NamesOfPeople: b.NamesOfPeople,
	}
}
