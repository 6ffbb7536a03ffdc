package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the stores rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{usersCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_email_key")},
		}},
		{listingsCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "country", Value: 1}, {Key: "city", Value: 1}}},
			{Keys: bson.D{{Key: "average_rating", Value: -1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "host_id", Value: 1}}},
		}},
		{bookingsCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "listing_id", Value: 1}, {Key: "from", Value: 1}, {Key: "to", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		}},
		{reviewsCollection, []mongo.IndexModel{
			// Imported reviews may lack listing_id; only the ones that carry it are deduplicated here.
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "listing_id", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetName("reviews_user_listing_key").
					SetPartialFilterExpression(bson.M{"listing_id": bson.M{"$exists": true}}),
			},
			{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		}},
	}
	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateMany(ctx, s.models); err != nil {
			return wrapErr("failed to create "+s.collection+" indexes", err)
		}
	}
	return nil
}
