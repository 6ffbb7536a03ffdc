// Package bootstrap assembles the fx graph shared by the API server and the seeder.
package bootstrap

import (
	"log/slog"

	"staybook/cmd/bootstrap/components"
	"staybook/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the full API server graph. The server itself is started by main.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	JWTModule,
	components.PersistenceModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.WithLogger(NewFxLogger),
)

// NewFxLogger routes fx lifecycle events through the application logger at debug.
func NewFxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
