package kafka

import (
	"context"

	"staybook/internal/usecase/shared"
)

// Noop drops events; used when KAFKA_BROKERS is empty.
type Noop struct{}

func (Noop) Publish(context.Context, shared.Event) error { return nil }
