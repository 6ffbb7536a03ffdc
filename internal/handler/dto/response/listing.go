package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"hostId"`
	NoOfPeople    int       `json:"noOfPeople"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	Price         float64   `json:"price"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ListingPageResponse struct {
	CurrentPage  int                `json:"currentPage"`
	TotalPages   int                `json:"totalPages"`
	TotalResults int                `json:"totalResults"`
	Data         []*ListingResponse `json:"data"`
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	var res ListingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.NoOfPeople = v.Capacity
	return &res, nil
}

func FromListingPage(p *queries.Page[*queries.ListingView]) (*ListingPageResponse, error) {
	res := &ListingPageResponse{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
		Data:         make([]*ListingResponse, 0, len(p.Data)),
	}
	for _, v := range p.Data {
		item, err := FromListingView(v)
		if err != nil {
			return nil, err
		}
		res.Data = append(res.Data, item)
	}
	return res, nil
}
