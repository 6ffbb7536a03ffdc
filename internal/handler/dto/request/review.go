package request

import (
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateReviewRequest targets a stay (booking) or a listing. With both set the stay
// must belong to the listing.
type CreateReviewRequest struct {
	StayID    *uuid.UUID `json:"stayId,omitempty"`
	ListingID *uuid.UUID `json:"listingId,omitempty"`
	Rating    int        `json:"rating" binding:"required,min=1,max=5"`
	Comment   string     `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		StayID:    r.StayID,
		ListingID: r.ListingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
