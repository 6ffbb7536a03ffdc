package mongo

import (
	"context"

	"staybook/internal/domain/listing"
	"staybook/internal/domain/review"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection(listingsCollection)}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	if _, err := r.col.InsertOne(ctx, newListingDocument(l)); err != nil {
		return wrapErr("failed to create listing", err)
	}
	return nil
}

// LockByID bumps booking_seq so any other transaction touching the same listing
// write-conflicts with this one until it ends.
func (r *ListingRepository) LockByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	var doc listingDocument
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$inc": bson.M{"booking_seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, wrapErr("failed to lock listing", err)
	}
	return doc.toDomain(), nil
}

func (r *ListingRepository) UpdateRating(ctx context.Context, id uuid.UUID, s review.Summary) error {
	res, err := r.col.UpdateByID(ctx, id.String(), bson.M{"$set": bson.M{
		"average_rating": s.Average,
		"total_reviews":  s.Count,
	}})
	if err != nil {
		return wrapErr("failed to update listing rating", err)
	}
	if res.MatchedCount == 0 {
		return notFound("listing not found")
	}
	return nil
}
