package review

import (
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewAlreadyExists = errs.NewKind("user has already reviewed this listing", errs.ErrConflict)

// Review always records both the listing and the stay (booking) that entitled it.
type Review struct {
	id        uuid.UUID
	listingID uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(listingID, bookingID, userID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		listingID: listingID,
		bookingID: bookingID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ListingID() uuid.UUID { return r.listingID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
