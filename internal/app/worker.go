package app

import (
	"context"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/events"
	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/outbox"

	"go.uber.org/zap"
)

// startOutbox wires checkout events through an in-process outbox to Kafka.
// Without a reachable broker events are dropped.
func startOutbox(ctx context.Context, cfg config.Config, logger *zap.Logger) (events.Publisher, func() error) {
	if cfg.KafkaBroker == "" {
		logger.Info("no kafka broker configured, events are not published")
		return events.NopPublisher{}, func() error { return nil }
	}

	writer, err := connectKafkaWithRetry(ctx, cfg, logger)
	if err != nil {
		logger.Warn("kafka unavailable, events are not published", zap.Error(err))
		return events.NopPublisher{}, func() error { return nil }
	}
	sink := producer.NewPublisher(writer)

	repo := outbox.NewMemoryRepository(outbox.DefaultMaxAttempts)
	processor := outbox.NewProcessor(repo, sink, cfg.OutboxInterval, logger.Named("outbox"))

	workerCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		processor.Start(workerCtx)
	}()

	stop := func() error {
		cancel()
		<-done
		reportUndelivered(repo, logger)
		return sink.Close()
	}
	return outbox.NewPublisher(repo), stop
}

// reportUndelivered logs events lost with the in-memory outbox: those the final
// drain could not send and those parked after too many attempts.
func reportUndelivered(repo *outbox.MemoryRepository, logger *zap.Logger) {
	pending, parked := repo.Pending(), repo.Parked()
	if len(pending) == 0 && len(parked) == 0 {
		return
	}
	ids := make([]string, 0, len(pending)+len(parked))
	for _, e := range pending {
		ids = append(ids, e.ID.String())
	}
	for _, e := range parked {
		ids = append(ids, e.ID.String())
	}
	logger.Warn("outbox stopped with undelivered events",
		zap.Int("pending", len(pending)),
		zap.Int("parked", len(parked)),
		zap.Strings("event_ids", ids),
	)
}
