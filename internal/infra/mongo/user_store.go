package mongo

import (
	"context"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserReadStore struct {
	col *mongo.Collection
}

func NewUserReadStore(db *mongo.Database) *UserReadStore {
	return &UserReadStore{col: db.Collection(usersCollection)}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	doc, err := s.find(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return nil, wrapErr("failed to find user by id", err)
	}
	return doc.toView(), nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	doc, err := s.find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, "", wrapErr("failed to find user by email", err)
	}
	return doc.toView(), doc.PasswordHash, nil
}

func (s *UserReadStore) find(ctx context.Context, filter bson.M) (userDocument, error) {
	var doc userDocument
	err := s.col.FindOne(ctx, filter).Decode(&doc)
	return doc, err
}
