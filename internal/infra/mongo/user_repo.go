package mongo

import (
	"context"
	"time"

	"staybook/internal/domain/user"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

// Create fails with KindDuplicateKey on users_email_key.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.col.InsertOne(ctx, newUserDocument(u)); err != nil {
		return wrapErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	res, err := r.col.UpdateByID(ctx, userID.String(), bson.M{"$set": bson.M{"last_login": at.UnixMilli()}})
	if err != nil {
		return wrapErr("failed to update last login", err)
	}
	if res.MatchedCount == 0 {
		return notFound("user not found")
	}
	return nil
}
