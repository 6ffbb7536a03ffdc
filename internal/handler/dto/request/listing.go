package request

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type CreateListingRequest struct {
	NoOfPeople int      `json:"noOfPeople" binding:"required,min=1"`
	Country    string   `json:"country" binding:"required"`
	City       string   `json:"city" binding:"required"`
	Price      *float64 `json:"price" binding:"required,min=0"`
}

func (r *CreateListingRequest) ToCommand() commands.CreateListingRequest {
	return commands.CreateListingRequest{
		Capacity: r.NoOfPeople,
		Country:  r.Country,
		City:     r.City,
		Price:    ptr.Deref(r.Price),
	}
}

// PageQuery is embedded by every paged listing query.
type PageQuery struct {
	Page  *int `form:"page"`
	Limit *int `form:"limit"`
}

func (q PageQuery) ToPageRequest() (queries.PageRequest, error) {
	return queries.NewPageRequest(q.Page, q.Limit)
}

type ListingSearchQuery struct {
	PageQuery
	Country    *string  `form:"country"`
	City       *string  `form:"city"`
	NoOfPeople *int     `form:"noOfPeople"`
	MinPrice   *float64 `form:"minPrice"`
	MaxPrice   *float64 `form:"maxPrice"`
	MinRating  *float64 `form:"minRating"`
	Sort       string   `form:"sort" binding:"omitempty,oneof=rating created"`
}

func (q *ListingSearchQuery) ToFilter() listing.Filter {
	f := listing.Filter{
		Country:     q.Country,
		City:        q.City,
		MinCapacity: q.NoOfPeople,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		MinRating:   ptr.Deref(q.MinRating),
	}
	if q.Sort == "rating" {
		f.Sort = listing.SortRating
	}
	return f
}

type AvailabilityQuery struct {
	PageQuery
	DateFrom   string  `form:"dateFrom" binding:"required"`
	DateTo     string  `form:"dateTo" binding:"required"`
	NoOfPeople *int    `form:"noOfPeople"`
	Country    *string `form:"country"`
	City       *string `form:"city"`
}

func (q *AvailabilityQuery) ToQuery() (queries.AvailabilityQuery, error) {
	stay, err := booking.ParseDateRange(q.DateFrom, q.DateTo)
	if err != nil {
		return queries.AvailabilityQuery{}, err
	}
	return queries.AvailabilityQuery{
		Stay: stay,
		Filter: listing.Filter{
			Country:     q.Country,
			City:        q.City,
			MinCapacity: q.NoOfPeople,
		},
	}, nil
}

type ReportQuery struct {
	PageQuery
	MinRating *float64 `form:"minRating"`
}

func (q *ReportQuery) ToFilter() listing.Filter {
	return listing.Filter{MinRating: ptr.Deref(q.MinRating)}
}

type AdminListingQuery struct {
	PageQuery
	Country *string `form:"country"`
	City    *string `form:"city"`
}

func (q *AdminListingQuery) ToFilter() listing.Filter {
	return listing.Filter{Country: q.Country, City: q.City}
}
