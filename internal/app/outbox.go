package app

import (
	"context"
	"time"

	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"github.com/gridfall/progression/internal/infrastructure/outbox"
	"github.com/gridfall/progression/internal/transport"
	"go.uber.org/fx"
)

const defaultOutboxInterval = 5 * time.Second

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	transportHandler *transport.Handler,
	log *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(outboxRepo, transportHandler, log)
}

// StartOutboxProcessor ties the processor to the application lifecycle
func (a *application) StartOutboxProcessor(lc fx.Lifecycle, processor domain.OutboxProcessor) {
	interval := a.config.Outbox.Interval
	if interval <= 0 {
		interval = defaultOutboxInterval
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			processor.Start(interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			processor.Stop()
			return nil
		},
	})
}
