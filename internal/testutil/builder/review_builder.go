//go:build unit || e2e

package builder

import (
	"time"

	domreview "staybook/internal/domain/review"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ListingID uuid.UUID
	BookingID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ListingID: uuid.New(),
		BookingID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    5,
		Comment:   "Lovely flat, great host",
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ListingID, r.BookingID, r.UserID, r.Rating, r.Comment, r.CreatedAt)
}

// BuildCreateRequestDTO targets the stay.
func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	stayID := r.BookingID
	return reqdto.CreateReviewRequest{
		StayID:  &stayID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.New(),
		ListingID: r.ListingID,
		BookingID: r.BookingID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
