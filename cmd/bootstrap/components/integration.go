package components

import (
	"context"
	"log/slog"

	"staybook/internal/infra/broker/kafka"
	"staybook/internal/infra/cache"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"go.uber.org/fx"
)

// IntegrationModule wires the optional collaborators. Without REDIS_ADDR or
// KAFKA_BROKERS the no-op implementations stand in.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewRatingCache,
		NewEventPublisher,
	),
)

type CacheResult struct {
	fx.Out

	Cache  shared.RatingCache
	Health HealthCheck `group:"health"`
}

func NewRatingCache(lc fx.Lifecycle, cfg config.Config, observer cache.Observer, logger *slog.Logger) CacheResult {
	if cfg.Redis.Addr == "" {
		logger.Info("rating cache disabled")
		return CacheResult{Cache: cache.Noop{}}
	}

	client := cache.NewRedisClient(cfg.Redis)
	rc := cache.NewRatingCache(client, cfg.Redis.TTL, observer)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return CacheResult{Cache: rc, Health: HealthCheck{Name: "cache", Pinger: rc}}
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, observer kafka.Observer, logger *slog.Logger) (shared.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("event publishing disabled")
		return kafka.Noop{}, nil
	}

	producer, err := kafka.NewSyncProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	pub := kafka.NewPublisher(producer, cfg.Kafka.Topic, observer)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
