package coupon_test

import (
	"context"
	"testing"
	"time"

	"go-storefront-api/internal/coupon"
	"go-storefront-api/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(kv storage.KV) coupon.Service {
	return coupon.NewService(coupon.Deps{
		KV:        kv,
		CouponTTL: 2 * time.Hour,
		CacheSize: 4,
		Logger:    zap.NewNop(),
	})
}

func TestCouponService(t *testing.T) {
	ctx := context.Background()

	t.Run("apply_and_current", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc := newTestService(kv)
		sid := uuid.NewString()

		got, err := svc.Apply(ctx, sid, " camsa20 ")
		require.NoError(t, err)
		assert.Equal(t, "CAMSA20", got.Code)

		current, err := svc.Current(ctx, sid)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "CAMSA20", current.Code)

		_, err = kv.Get(ctx, coupon.StorageKey(sid))
		assert.NoError(t, err)
	})

	t.Run("rejected_code_keeps_current", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		sid := uuid.NewString()

		_, err := svc.Apply(ctx, sid, "CAMSA10")
		require.NoError(t, err)

		_, err = svc.Apply(ctx, sid, "NOPE")
		assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
		_, err = svc.Apply(ctx, sid, "")
		assert.ErrorIs(t, err, coupon.ErrMissingCode)

		current, err := svc.Current(ctx, sid)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "CAMSA10", current.Code)
	})

	t.Run("remove", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc := newTestService(kv)
		sid := uuid.NewString()

		removed, err := svc.Remove(ctx, sid)
		require.NoError(t, err)
		assert.False(t, removed)

		_, err = svc.Apply(ctx, sid, "CAMSA10")
		require.NoError(t, err)
		removed, err = svc.Remove(ctx, sid)
		require.NoError(t, err)
		assert.True(t, removed)

		current, err := svc.Current(ctx, sid)
		require.NoError(t, err)
		assert.Nil(t, current)
		_, err = kv.Get(ctx, coupon.StorageKey(sid))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("rehydrates_from_storage", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		sid := uuid.NewString()
		_, err := newTestService(kv).Apply(ctx, sid, "CAMSA10")
		require.NoError(t, err)

		current, err := newTestService(kv).Current(ctx, sid)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "CAMSA10", current.Code)
	})

	t.Run("sessions_are_isolated", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.Apply(ctx, "session-a-0001", "CAMSA10")
		require.NoError(t, err)

		current, err := svc.Current(ctx, "session-b-0002")
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("missing_session", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.Current(ctx, "")
		assert.ErrorIs(t, err, coupon.ErrInvalidSession)
	})
}
