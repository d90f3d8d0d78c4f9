package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-storefront-api/internal/events"
	"go-storefront-api/internal/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type downSink struct{}

func (downSink) Publish(context.Context, events.Event) error { return errors.New("broker down") }

func TestReportUndelivered(t *testing.T) {
	ctx := context.Background()

	t.Run("pending_and_parked_are_reported", func(t *testing.T) {
		repo := outbox.NewMemoryRepository(1)
		lost, err := events.New(events.TypeCheckoutCompleted, "a", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, lost))

		p := outbox.NewProcessor(repo, downSink{}, time.Second, zap.NewNop())
		_, err = p.Flush(ctx)
		require.NoError(t, err)
		require.Len(t, repo.Parked(), 1)

		undrained, err := events.New(events.TypeCheckoutCompleted, "b", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, undrained))

		core, logs := observer.New(zapcore.WarnLevel)
		reportUndelivered(repo, zap.New(core))

		entries := logs.FilterMessage("outbox stopped with undelivered events").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.EqualValues(t, 1, fields["pending"])
		assert.EqualValues(t, 1, fields["parked"])
		assert.ElementsMatch(t, []any{undrained.ID.String(), lost.ID.String()}, fields["event_ids"])
	})

	t.Run("nothing_to_report", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		reportUndelivered(outbox.NewMemoryRepository(1), zap.New(core))
		assert.Zero(t, logs.Len())
	})
}
