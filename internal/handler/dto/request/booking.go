package request

import (
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest carries dates as YYYY-MM-DD; dateTo is the checkout day.
type CreateBookingRequest struct {
	ListingID     uuid.UUID `json:"listingId" binding:"required"`
	DateFrom      string    `json:"dateFrom" binding:"required"`
	DateTo        string    `json:"dateTo" binding:"required"`
	NamesOfPeople []string  `json:"namesOfPeople" binding:"required,min=1"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ListingID:     r.ListingID,
		DateFrom:      r.DateFrom,
		DateTo:        r.DateTo,
		NamesOfPeople: r.NamesOfPeople,
	}
}
