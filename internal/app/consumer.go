package app

import (
	"context"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReadCloser interface {
	consumer.MessageReader
	Close() error
}

// startConsumer applies CLEAR_CART commands through the same services that
// serve HTTP, so a cleared session is dropped from the cached stores the
// handlers read.
func startConsumer(cfg config.Config, m Modules, logger *zap.Logger) func() error {
	if cfg.KafkaBroker == "" {
		logger.Info("no kafka broker configured, clear-cart commands are not consumed")
		return func() error { return nil }
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
	logger.Info("kafka reader initialized",
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group_id", cfg.KafkaGroupID),
	)
	return runConsumer(reader, m, logger)
}

func runConsumer(reader messageReadCloser, m Modules, logger *zap.Logger) func() error {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeMessages(ctx, reader, logger.Named("consumer"), m.Carts, m.Coupons)
	}()

	return func() error {
		cancel()
		<-done
		logger.Info("cart consumer stopped")
		return reader.Close()
	}
}
