// Command seed creates the admin, host and guest accounts in the configured store.
// Accounts whose email already exists are left untouched.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"staybook/cmd/bootstrap"
	"staybook/cmd/bootstrap/components"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/shared"

	"go.uber.org/fx"
)

const defaultPassword = "password123"

var seedUsers = []struct {
	email string
	role  user.Role
}{
	{"admin@example.com", user.RoleAdmin},
	{"host@example.com", user.RoleHost},
	{"guest@example.com", user.RoleGuest},
}

func seed(ctx context.Context, uow shared.UnitOfWork, pw string, logger *slog.Logger) error {
	hash, err := password.HashPassword(pw)
	if err != nil {
		return err
	}
	now := time.Now()

	for _, s := range seedUsers {
		email, err := user.NewEmail(s.email)
		if err != nil {
			return err
		}
		u := user.NewUser(email, hash, s.role, now)
		err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, u)
		})
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			logger.Info("user already exists, skipped", "email", s.email)
		case err != nil:
			return err
		default:
			logger.Info("user created", "email", s.email, "role", s.role)
		}
	}
	return nil
}

func main() {
	pw := os.Getenv("SEED_PASSWORD")
	if pw == "" {
		pw = defaultPassword
	}

	var runErr error
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		fx.NopLogger,
		fx.Invoke(func(uow shared.UnitOfWork, logger *slog.Logger) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			runErr = seed(ctx, uow, pw, logger)
		}),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build seed application", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// the invoke has already run; Stop closes the store connections
	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start seed application", "error", err)
		os.Exit(1)
	}
	_ = app.Stop(ctx)

	if runErr != nil {
		slog.Error("seeding failed", "error", runErr)
		os.Exit(1)
	}
}
