package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-storefront-api/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var errMissingSession = errors.New("clear cart command without session id")

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// SessionClearer empties one session's state.
type SessionClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

// ConsumeMessages handles CLEAR_CART commands until ctx is done. A command is
// committed only after every clearer succeeded; other event types are
// committed and skipped.
func ConsumeMessages(ctx context.Context, reader MessageReader, logger *zap.Logger, clearers ...SessionClearer) {
	if logger == nil {
		logger = zap.L().Named("consumer")
	}
	logger.Info("started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("error fetching message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")
		if eventType != events.TypeClearCart {
			commit(ctx, reader, msg, logger)
			continue
		}

		if err := handleClearCart(ctx, msg.Value, logger, clearers); err != nil {
			logger.Error("error handling CLEAR_CART", zap.Error(err), zap.Int64("offset", msg.Offset))
			continue
		}
		commit(ctx, reader, msg, logger)
	}
}

func handleClearCart(ctx context.Context, payload []byte, logger *zap.Logger, clearers []SessionClearer) error {
	var data events.ClearCartPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}
	sessionID := strings.TrimSpace(data.SessionID)
	if sessionID == "" {
		return errMissingSession
	}

	for _, c := range clearers {
		if err := c.Clear(ctx, sessionID); err != nil {
			return err
		}
	}
	logger.Info("session cleared", zap.String("session_id", sessionID))
	return nil
}

func commit(ctx context.Context, reader MessageReader, msg kafka.Message, logger *zap.Logger) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		logger.Warn("error committing message", zap.Error(err))
	}
}

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
