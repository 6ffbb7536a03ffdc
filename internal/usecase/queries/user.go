package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.NewKind("user not found", errs.ErrNotFound)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type UserQueries interface {
	// GetCurrentUser loads the account behind actor. A token whose role no longer
	// matches the stored account is treated as belonging to no one.
	GetCurrentUser(ctx context.Context, actor shared.Actor) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor shared.Actor) (*AuthorizedUserView, error) {
	v, err := q.store.FindByID(ctx, actor.UserID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrap(err, "load current user")
	case v.Role != actor.Role.String():
		return nil, ErrUserNotFound
	}
	return v, nil
}
