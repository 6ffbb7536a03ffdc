package mongo

import (
	"context"

	"staybook/internal/domain/listing"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListingReadStore struct {
	col *mongo.Collection
}

func NewListingReadStore(db *mongo.Database) *ListingReadStore {
	return &ListingReadStore{col: db.Collection(listingsCollection)}
}

func (s *ListingReadStore) Find(ctx context.Context, f listing.Filter, skip, limit int) ([]*queries.ListingView, error) {
	opts := options.Find().
		SetSort(listingSort(f.Sort)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	docs, err := findAll[listingDocument](ctx, s.col, listingFilter(f), opts)
	if err != nil {
		return nil, wrapErr("failed to query listings", err)
	}
	out := make([]*queries.ListingView, len(docs))
	for i, d := range docs {
		out[i] = d.toView()
	}
	return out, nil
}

func (s *ListingReadStore) Count(ctx context.Context, f listing.Filter) (int, error) {
	n, err := s.col.CountDocuments(ctx, listingFilter(f))
	if err != nil {
		return 0, wrapErr("failed to count listings", err)
	}
	return int(n), nil
}

func (s *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	var doc listingDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, wrapErr("failed to find listing", err)
	}
	return doc.toView(), nil
}
