package outbox

import (
	"context"
	"time"

	"go-storefront-api/internal/events"

	"go.uber.org/zap"
)

const (
	DefaultInterval  = 5 * time.Second
	DefaultBatchSize = 10
)

// Publisher records events in the outbox. Delivery happens later in the
// Processor, so publishing never waits on the broker.
type Publisher struct {
	repo Repository
}

func NewPublisher(repo Repository) *Publisher {
	return &Publisher{repo: repo}
}

func (p *Publisher) Publish(ctx context.Context, e events.Event) error {
	return p.repo.Append(ctx, e)
}

type Processor struct {
	repo      Repository
	sink      events.Publisher
	interval  time.Duration
	batchSize int
	logger    *zap.Logger
}

func NewProcessor(repo Repository, sink events.Publisher, interval time.Duration, logger *zap.Logger) *Processor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.L().Named("outbox")
	}
	return &Processor{
		repo:      repo,
		sink:      sink,
		interval:  interval,
		batchSize: DefaultBatchSize,
		logger:    logger,
	}
}

// Start flushes on every tick until ctx is done, then makes one last attempt.
func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("outbox processor started", zap.Duration("interval", p.interval))

	for {
		select {
		case <-ticker.C:
			if _, err := p.Flush(ctx); err != nil {
				p.logger.Error("outbox flush failed", zap.Error(err))
			}
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.Background(), p.interval)
			if _, err := p.Flush(drainCtx); err != nil {
				p.logger.Warn("final outbox flush failed", zap.Error(err))
			}
			cancel()
			p.logger.Info("outbox processor stopped")
			return
		}
	}
}

// Flush sends one batch of pending events and reports how many went out.
func (p *Processor) Flush(ctx context.Context) (int, error) {
	pending, err := p.repo.ListPending(ctx, p.batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, e := range pending {
		logger := p.logger.With(zap.String("event_id", e.ID.String()), zap.String("event_type", e.Type))
		if err := p.sink.Publish(ctx, e); err != nil {
			logger.Warn("failed to publish event", zap.Error(err))
			_ = p.repo.MarkFailed(ctx, e.ID)
			continue
		}
		if err := p.repo.MarkSent(ctx, e.ID); err != nil {
			logger.Warn("failed to mark event as sent", zap.Error(err))
			continue
		}
		sent++
	}
	if sent > 0 {
		p.logger.Debug("outbox flushed", zap.Int("sent", sent))
	}
	return sent, nil
}
