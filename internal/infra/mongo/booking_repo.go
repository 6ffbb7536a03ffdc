package mongo

import (
	"context"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.col.InsertOne(ctx, newBookingDocument(b)); err != nil {
		return wrapErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, listingID uuid.UUID, stay booking.DateRange) ([]booking.Slot, error) {
	return findOverlapping(ctx, r.col, &listingID, stay)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, wrapErr("failed to find booking", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindForUser(ctx context.Context, userID, ref uuid.UUID) ([]*booking.Booking, error) {
	filter := bson.M{
		"user_id": userID.String(),
		"$or": bson.A{
			bson.M{"_id": ref.String()},
			bson.M{"listing_id": ref.String()},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "from", Value: 1}, {Key: "_id", Value: 1}})
	docs, err := findAll[bookingDocument](ctx, r.col, filter, opts)
	if err != nil {
		return nil, wrapErr("failed to find user bookings", err)
	}
	out := make([]*booking.Booking, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func findOverlapping(ctx context.Context, col *mongo.Collection, listingID *uuid.UUID, stay booking.DateRange) ([]booking.Slot, error) {
	opts := options.Find().SetProjection(bson.M{"listing_id": 1, "from": 1, "to": 1})
	docs, err := findAll[bookingDocument](ctx, col, overlapFilter(listingID, stay), opts)
	if err != nil {
		return nil, wrapErr("failed to find overlapping bookings", err)
	}
	slots := make([]booking.Slot, len(docs))
	for i, d := range docs {
		slots[i] = d.slot()
	}
	return slots, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
