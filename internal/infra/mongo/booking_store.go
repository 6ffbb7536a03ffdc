package mongo

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingReadStore struct {
	col *mongo.Collection
}

func NewBookingReadStore(db *mongo.Database) *BookingReadStore {
	return &BookingReadStore{col: db.Collection(bookingsCollection)}
}

func (s *BookingReadStore) FindOverlapping(ctx context.Context, listingID *uuid.UUID, stay booking.DateRange) ([]booking.Slot, error) {
	return findOverlapping(ctx, s.col, listingID, stay)
}

func (s *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "from", Value: -1}, {Key: "_id", Value: 1}})
	docs, err := findAll[bookingDocument](ctx, s.col, bson.M{"user_id": userID.String()}, opts)
	if err != nil {
		return nil, wrapErr("failed to query user bookings", err)
	}
	out := make([]*queries.BookingView, len(docs))
	for i, d := range docs {
		out[i] = queries.NewBookingView(d.toDomain())
	}
	return out, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var doc bookingDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, wrapErr("failed to find booking", err)
	}
	return queries.NewBookingView(doc.toDomain()), nil
}
