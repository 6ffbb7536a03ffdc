package response

import (
	"staybook/internal/domain/review"
	"staybook/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        string `json:"id"`
	ListingID string `json:"listingId"`
	StayID    string `json:"stayId"`
	UserID    string `json:"userId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        v.ID.String(),
		ListingID: v.ListingID.String(),
		StayID:    v.BookingID.String(),
		UserID:    v.UserID.String(),
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

type ListingReviewsResponse struct {
	Summary review.Summary    `json:"summary"`
	Data    []*ReviewResponse `json:"data"`
}

func FromListingReviews(r *queries.ListingReviews) *ListingReviewsResponse {
	res := &ListingReviewsResponse{
		Summary: r.Summary,
		Data:    make([]*ReviewResponse, len(r.Data)),
	}
	for i, v := range r.Data {
		res.Data[i] = FromReviewView(v)
	}
	return res
}
