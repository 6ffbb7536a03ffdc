package mongo

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// listingFilter translates a normalized listing.Filter into a query document.
// Country and city are compared exactly as stored.
func listingFilter(f listing.Filter) bson.D {
	q := bson.D{}
	if f.Country != nil {
		q = append(q, bson.E{Key: "country", Value: *f.Country})
	}
	if f.City != nil {
		q = append(q, bson.E{Key: "city", Value: *f.City})
	}
	if f.MinCapacity != nil {
		q = append(q, bson.E{Key: "capacity", Value: bson.M{"$gte": *f.MinCapacity}})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q = append(q, bson.E{Key: "price", Value: price})
	}
	if f.HasRatingFilter() {
		q = append(q, bson.E{Key: "average_rating", Value: bson.M{"$gte": f.MinRating}})
	}
	if f.HostID != nil {
		q = append(q, bson.E{Key: "host_id", Value: f.HostID.String()})
	}
	if len(f.ExcludeIDs) > 0 {
		q = append(q, bson.E{Key: "_id", Value: bson.M{"$nin": idStrings(f.ExcludeIDs)}})
	}
	return q
}

func listingSort(s listing.Sort) bson.D {
	if s == listing.SortRating {
		return bson.D{{Key: "average_rating", Value: -1}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
}

// overlapFilter matches stored stays sharing a day with stay: from < stay.to and to > stay.from.
func overlapFilter(listingID *uuid.UUID, stay booking.DateRange) bson.D {
	q := bson.D{
		{Key: "from", Value: bson.M{"$lt": stay.To().UnixMilli()}},
		{Key: "to", Value: bson.M{"$gt": stay.From().UnixMilli()}},
	}
	if listingID != nil {
		q = append(bson.D{{Key: "listing_id", Value: listingID.String()}}, q...)
	}
	return q
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
