package postgres

import (
	"context"
	"time"

	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db DBTX
}

func NewUserReadStore(db DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	v, _, err := s.find(ctx, "id = $1", id)
	if err != nil {
		return nil, wrapErr("failed to find user by id", err)
	}
	return v, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	v, hash, err := s.find(ctx, "email = $1", email)
	if err != nil {
		return nil, "", wrapErr("failed to find user by email", err)
	}
	return v, hash, nil
}

func (s *UserReadStore) find(ctx context.Context, where string, arg any) (*queries.AuthorizedUserView, string, error) {
	var (
		v         queries.AuthorizedUserView
		hash      string
		lastLogin pgtype.Timestamptz
		createdAt time.Time
	)
	err := s.db.QueryRow(ctx,
		"SELECT id, email, password_hash, role, last_login, created_at FROM users WHERE "+where, arg).
		Scan(&v.ID, &v.Email, &hash, &v.Role, &lastLogin, &createdAt)
	if err != nil {
		return nil, "", err
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	v.CreatedAt = createdAt.UTC()
	return &v, hash, nil
}
