package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"
	"staybook/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. The store retries fn on transient
	// conflicts, so fn must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Listings() ListingRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Users() UserRepository
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	// LockByID loads the listing and holds it until the transaction ends. Every
	// write that depends on the listing's bookings or reviews goes through it.
	LockByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	UpdateRating(ctx context.Context, id uuid.UUID, s review.Summary) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindOverlapping(ctx context.Context, listingID uuid.UUID, stay booking.DateRange) ([]booking.Slot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindForUser returns the user's bookings whose id or listing id equals stayOrListingID.
	FindForUser(ctx context.Context, userID, stayOrListingID uuid.UUID) ([]*booking.Booking, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	RatingsForListing(ctx context.Context, listingID uuid.UUID) ([]review.Record, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
