package mongo

import (
	"context"

	"staybook/internal/domain/review"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(reviewsCollection)}
}

// Create fails with KindDuplicateKey when the user already reviewed the listing.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	if _, err := r.col.InsertOne(ctx, newReviewDocument(rv)); err != nil {
		return wrapErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) RatingsForListing(ctx context.Context, listingID uuid.UUID) ([]review.Record, error) {
	return ratingsForListing(ctx, r.col, listingID)
}

// reviewsPipeline joins every review with its stay and keeps the ones that point
// at listingID directly or through the stay. Imported reviews may lack listing_id.
func reviewsPipeline(listingID uuid.UUID, tail ...bson.D) mongo.Pipeline {
	id := listingID.String()
	p := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: bookingsCollection},
			{Key: "localField", Value: "booking_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "stay"},
		}}},
		{{Key: "$unwind", Value: "$stay"}},
		{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.M{"listing_id": id},
			bson.M{"stay.listing_id": id},
		}}}}},
	}
	return append(p, tail...)
}

func aggregateReviews(ctx context.Context, col *mongo.Collection, p mongo.Pipeline) ([]reviewWithStay, error) {
	cur, err := col.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	out := []reviewWithStay{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func ratingsForListing(ctx context.Context, col *mongo.Collection, listingID uuid.UUID) ([]review.Record, error) {
	docs, err := aggregateReviews(ctx, col, reviewsPipeline(listingID))
	if err != nil {
		return nil, wrapErr("failed to load ratings", err)
	}
	records := make([]review.Record, len(docs))
	for i, d := range docs {
		records[i] = d.record()
	}
	return records, nil
}
