package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"staybook/internal/domain/auth"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"
)

var (
	ErrEmailTaken      = errs.NewKind("email is already registered", errs.ErrConflict)
	ErrTokenGeneration = errs.New("token generation failed")
	ErrPasswordHashing = errs.New("password hashing failed")
	ErrUnknownUserRole = errs.New("stored user has an unknown role")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type LoginRequest struct {
	Email    string
	Password string
}

type RegisterRequest struct {
	Email    string
	Password string
	Role     string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	clock     clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownUserRole)
	}

	token, err := a.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID, now)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	} else {
		view.LastLogin = &now
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
		User:        view,
	}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*queries.AuthorizedUserView, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	u, err := user.Register(credentials.Email(), hash, role, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so emails cannot be enumerated
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return view, nil
}
