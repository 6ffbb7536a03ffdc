package components

import (
	"context"
	"fmt"
	"log/slog"

	"staybook/internal/handler/api"
	"staybook/internal/infra"
	mongostore "staybook/internal/infra/mongo"
	"staybook/internal/infra/postgres"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"go.uber.org/fx"
)

// HealthCheck is collected into the /health handler.
type HealthCheck struct {
	Name   string
	Pinger api.Pinger
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(NewPersistence),
)

// Persistence is everything the use cases need from storage. Both drivers fill
// the same ports so nothing above infra knows which one is running.
type Persistence struct {
	fx.Out

	UoW      shared.UnitOfWork
	Listings queries.ListingReadStore
	Bookings queries.BookingReadStore
	Reviews  queries.ReviewReadStore
	Users    queries.UserReadStore
	Health   HealthCheck `group:"health"`
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, observer infra.RetryObserver, logger *slog.Logger) (Persistence, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return newPostgres(lc, cfg, observer, logger)
	case config.DriverMongo:
		return newMongo(lc, cfg, observer, logger)
	default:
		return Persistence{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newPostgres(lc fx.Lifecycle, cfg config.Config, observer infra.RetryObserver, logger *slog.Logger) (Persistence, error) {
	pool, err := postgres.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			logger.Info("postgres pool closed")
			return nil
		},
	})

	return Persistence{
		UoW:      postgres.NewUnitOfWork(pool, observer),
		Listings: postgres.NewListingReadStore(pool),
		Bookings: postgres.NewBookingReadStore(pool),
		Reviews:  postgres.NewReviewReadStore(pool),
		Users:    postgres.NewUserReadStore(pool),
		Health:   HealthCheck{Name: "storage", Pinger: pool},
	}, nil
}

func newMongo(lc fx.Lifecycle, cfg config.Config, observer infra.RetryObserver, logger *slog.Logger) (Persistence, error) {
	ctx := context.Background()
	client, db, err := mongostore.Connect(ctx, cfg.Mongo)
	if err != nil {
		return Persistence{}, err
	}
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("disconnecting mongo client")
			return client.Disconnect(ctx)
		},
	})

	return Persistence{
		UoW:      mongostore.NewUnitOfWork(db, observer),
		Listings: mongostore.NewListingReadStore(db),
		Bookings: mongostore.NewBookingReadStore(db),
		Reviews:  mongostore.NewReviewReadStore(db),
		Users:    mongostore.NewUserReadStore(db),
		Health: HealthCheck{Name: "storage", Pinger: api.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})},
	}, nil
}
