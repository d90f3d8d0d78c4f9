package coupon

import (
	"context"
	"strings"
	"time"

	"go-storefront-api/internal/session"
	"go-storefront-api/internal/storage"

	"go.uber.org/zap"
)

const storageKeyPrefix = "store_prototype_coupon:"

// StorageKey is the KV key holding sessionID's applied coupon.
func StorageKey(sessionID string) string {
	return storageKeyPrefix + sessionID
}

//go:generate mockgen -source=coupon_service.go -destination=../mock/coupon/coupon_service_mock.go -package=mock
type Service interface {
	// Apply validates code and makes it the session's coupon. A rejected code
	// leaves any current coupon in place.
	Apply(ctx context.Context, sessionID, code string) (Applied, error)
	Current(ctx context.Context, sessionID string) (*Applied, error)
	// Remove reports whether a coupon was applied.
	Remove(ctx context.Context, sessionID string) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

type Deps struct {
	KV        storage.KV
	Validator *Validator
	CouponTTL time.Duration
	CacheSize int
	Logger    *zap.Logger
}

type service struct {
	kv        storage.KV
	validator *Validator
	ttl       time.Duration
	stores    *session.Cache[*Store]
	logger    *zap.Logger
}

func NewService(d Deps) Service {
	if d.KV == nil {
		panic("coupon: NewService requires KV")
	}
	validator := d.Validator
	if validator == nil {
		validator = NewValidator()
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.L().Named("coupon")
	}
	stores, err := session.NewCache[*Store](d.CacheSize)
	if err != nil {
		panic(err)
	}
	return &service{
		kv:        d.KV,
		validator: validator,
		ttl:       d.CouponTTL,
		stores:    stores,
		logger:    logger,
	}
}

func (s *service) store(ctx context.Context, sessionID string) (*Store, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	return s.stores.GetOrCreate(sessionID, func() (*Store, error) {
		st := NewStore(s.kv, StorageKey(sessionID), s.ttl, s.logger.With(zap.String("session_id", sessionID)))
		st.Load(ctx)
		return st, nil
	})
}

func (s *service) Apply(ctx context.Context, sessionID, code string) (Applied, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return Applied{}, err
	}
	applied, err := s.validator.Validate(code)
	if err != nil {
		return Applied{}, err
	}
	st.Set(ctx, applied)
	return applied, nil
}

func (s *service) Current(ctx context.Context, sessionID string) (*Applied, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	applied, ok := st.Current()
	if !ok {
		return nil, nil
	}
	return &applied, nil
}

func (s *service) Remove(ctx context.Context, sessionID string) (bool, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return st.Clear(ctx), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	_, err := s.Remove(ctx, sessionID)
	return err
}
