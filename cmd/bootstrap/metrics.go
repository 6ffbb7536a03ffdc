package bootstrap

import (
	"staybook/internal/handler/middleware"
	"staybook/internal/infra"
	"staybook/internal/infra/broker/kafka"
	"staybook/internal/infra/cache"
	"staybook/internal/pkg/metrics"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

// MetricsModule exposes the one registry under every observer port.
var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(fx.Self()),
			fx.As(new(middleware.HTTPObserver)),
			fx.As(new(infra.RetryObserver)),
			fx.As(new(cache.Observer)),
			fx.As(new(kafka.Observer)),
			fx.As(new(commands.ConflictObserver)),
		),
	),
)
