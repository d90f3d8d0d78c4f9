package coupon

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-storefront-api/internal/storage"

	"go.uber.org/zap"
)

// Store holds the coupon applied to one session and mirrors it to the KV.
// The in-memory value wins when persistence fails.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	key     string
	ttl     time.Duration
	logger  *zap.Logger
	current *Applied
}

func NewStore(kv storage.KV, key string, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		key:    key,
		ttl:    ttl,
		logger: logger.With(zap.String("key", key)),
	}
}

// Load reads the persisted coupon. Corrupt or foreign records count as no
// coupon.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to read persisted coupon", zap.Error(err))
		return
	}
	applied, err := decode(raw)
	if err != nil {
		s.logger.Warn("ignoring unreadable coupon record", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.current = &applied
	s.mu.Unlock()
}

func (s *Store) Current() (Applied, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Applied{}, false
	}
	return *s.current, true
}

func (s *Store) Set(ctx context.Context, a Applied) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &a

	payload, err := encode(a)
	if err != nil {
		s.logger.Warn("failed to encode coupon", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key, payload, s.ttl); err != nil {
		s.logger.Warn("failed to persist coupon", zap.Error(err))
	}
}

// Clear drops the coupon and reports whether one was applied. The persisted
// key is always deleted.
func (s *Store) Clear(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.current != nil
	s.current = nil

	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.logger.Warn("failed to delete persisted coupon", zap.Error(err))
	}
	return had
}
