package response

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ListingID     uuid.UUID `json:"listingId"`
	UserID        uuid.UUID `json:"userId"`
	DateFrom      string    `json:"dateFrom"`
	DateTo        string    `json:"dateTo"`
	Nights        int       `json:"nights"`
	NamesOfPeople []string  `json:"namesOfPeople"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	res.DateFrom = v.DateFrom.Format(booking.DateLayout)
	res.DateTo = v.DateTo.Format(booking.DateLayout)
	res.Nights = booking.RestoreDateRange(v.DateFrom, v.DateTo).Nights()
	return &res, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}
