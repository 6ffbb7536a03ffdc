package mongo

import (
	"context"

	"staybook/internal/domain/review"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewReadStore struct {
	col *mongo.Collection
}

func NewReviewReadStore(db *mongo.Database) *ReviewReadStore {
	return &ReviewReadStore{col: db.Collection(reviewsCollection)}
}

// FindByListing lists reviews newest first.
func (s *ReviewReadStore) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*queries.ReviewView, error) {
	p := reviewsPipeline(listingID,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}}})
	docs, err := aggregateReviews(ctx, s.col, p)
	if err != nil {
		return nil, wrapErr("failed to query reviews", err)
	}
	out := make([]*queries.ReviewView, len(docs))
	for i, d := range docs {
		out[i] = d.toView()
	}
	return out, nil
}

func (s *ReviewReadStore) RatingsForListing(ctx context.Context, listingID uuid.UUID) ([]review.Record, error) {
	return ratingsForListing(ctx, s.col, listingID)
}
