package commands

import (
	"context"
	"log/slog"

	"staybook/internal/usecase/shared"
)

// publish runs after commit. The write already succeeded, so a broker failure is
// only logged.
func publish(ctx context.Context, p shared.EventPublisher, ev shared.Event) {
	if err := p.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish event",
			"type", ev.Type,
			"key", ev.Key,
			"error", err.Error())
	}
}
