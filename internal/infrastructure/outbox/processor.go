package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Processor implements domain.OutboxProcessor. It drains pending progression
// events and hands them to the publisher; delivery failures are retried a
// bounded number of times before the event is parked as failed.
type Processor struct {
	outboxRepo domain.OutboxRepository
	publisher  domain.EventPublisher
	logger     *logger.Logger
	maxRetries int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	publisher domain.EventPublisher,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo: outboxRepo,
		publisher:  publisher,
		logger:     logger,
		maxRetries: 5,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start begins polling for pending events at the given interval
func (p *Processor) Start(interval time.Duration) {
	p.mu.Lock()
	if p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		p.logger.Info("Outbox processor started", zap.Duration("interval", interval))
		for {
			select {
			case <-p.ctx.Done():
				p.logger.Info("Outbox processor stopped")
				return
			case <-ticker.C:
				if err := p.ProcessEvents(); err != nil {
					p.logger.Error("Outbox processing cycle failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop cancels the polling loop and waits for it to exit
func (p *Processor) Stop() {
	p.cancel()
	p.wg.Wait()

	p.mu.Lock()
	p.isRunning = false
	p.mu.Unlock()
}

// ProcessEvents processes all pending events
func (p *Processor) ProcessEvents() error {
	events, err := p.outboxRepo.GetPendingEvents(100)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		select {
		case <-p.ctx.Done():
			return fmt.Errorf("processor cancelled")
		default:
		}

		if err := p.ProcessEvent(event); err != nil {
			p.logger.Error("Failed to process event",
				zap.String("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Error(err))

			if event.RetryCount < p.maxRetries {
				if retryErr := p.outboxRepo.IncrementRetryCount(event.ID); retryErr != nil {
					p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
				}
			} else {
				if failErr := p.outboxRepo.MarkAsFailed(event.ID, err.Error()); failErr != nil {
					p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
				}
			}
		}
	}

	return nil
}

// ProcessEvent publishes a single outbox event and marks it processed
func (p *Processor) ProcessEvent(event *domain.OutboxEvent) error {
	p.logger.Debug("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	if err := p.publisher.Publish(event); err != nil {
		return err
	}

	return p.outboxRepo.MarkAsProcessed(event.ID)
}
