package postgres

import (
	"context"
	"time"

	"staybook/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.CreatedAt())
	if err != nil {
		return wrapErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, userID, at)
	if err != nil {
		return wrapErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("user not found")
	}
	return nil
}
