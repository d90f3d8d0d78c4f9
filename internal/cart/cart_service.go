package cart

import (
	"context"
	"strings"
	"time"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/session"
	"go-storefront-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const storageKeyPrefix = "store_prototype_cart:"

// StorageKey is the KV key holding sessionID's cart record.
func StorageKey(sessionID string) string {
	return storageKeyPrefix + sessionID
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, sessionID string) (CartDetailResponse, error)
	Count(ctx context.Context, sessionID string) (int, error)
	Items(ctx context.Context, sessionID string) ([]ResolvedLineItem, error)

	AddItem(ctx context.Context, sessionID string, req AddItemRequest) error
	AddReservation(ctx context.Context, sessionID string, req AddReservationRequest) error
	UpdateQty(ctx context.Context, sessionID string, key LineKey, req UpdateQtyRequest) error

	Increment(ctx context.Context, sessionID string, key LineKey) error
	Decrement(ctx context.Context, sessionID string, key LineKey) error

	DeleteItem(ctx context.Context, sessionID string, key LineKey) error
	Clear(ctx context.Context, sessionID string) error
}

type Deps struct {
	KV        storage.KV
	Catalog   catalog.Provider
	CartTTL   time.Duration
	CacheSize int
	Logger    *zap.Logger
	// Now is used to reject reservations in the past. Defaults to time.Now.
	Now func() time.Time
}

type service struct {
	kv       storage.KV
	catalog  catalog.Provider
	ttl      time.Duration
	stores   *session.Cache[*Store]
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(d Deps) Service {
	if d.KV == nil || d.Catalog == nil {
		panic("cart: NewService requires KV and Catalog")
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.L().Named("cart")
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	stores, err := session.NewCache[*Store](d.CacheSize)
	if err != nil {
		panic(err)
	}
	return &service{
		kv:       d.KV,
		catalog:  d.Catalog,
		ttl:      d.CartTTL,
		stores:   stores,
		validate: validator.New(),
		logger:   logger,
		now:      now,
	}
}

// ========================
// helpers
// ========================

func (s *service) store(ctx context.Context, sessionID string) (*Store, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	return s.stores.GetOrCreate(sessionID, func() (*Store, error) {
		logger := s.logger.With(zap.String("session_id", sessionID))
		st := NewStore(s.kv, StorageKey(sessionID), WithTTL(s.ttl), WithLogger(logger))
		st.Load(ctx)
		st.Subscribe(func(snap Snapshot) {
			logger.Debug("cart changed",
				zap.Int("lines", len(snap.Lines)),
				zap.Int("total_items", snap.TotalItems),
			)
		})
		return st, nil
	})
}

func (s *service) findProduct(id int) (catalog.Product, error) {
	p, ok := s.catalog.FindProduct(id)
	if !ok {
		return catalog.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) findService(id int) (catalog.Service, error) {
	svc, ok := s.catalog.FindService(id)
	if !ok {
		return catalog.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

// checkItem confirms key points at a catalog entry.
func (s *service) checkItem(key LineKey) error {
	if key.ItemID < 1 {
		return ErrInvalidItemID
	}
	switch key.Kind {
	case KindProduct:
		_, err := s.findProduct(key.ItemID)
		return err
	case KindService:
		_, err := s.findService(key.ItemID)
		return err
	default:
		return ErrInvalidKind
	}
}

// clampToStock returns the quantity a product line may hold, or
// ErrOutOfStock when nothing more fits.
func clampToStock(p catalog.Product, current, wanted int) (int, error) {
	if wanted <= p.Stock {
		return wanted, nil
	}
	if current >= p.Stock {
		return 0, ErrOutOfStock
	}
	return p.Stock, nil
}

// ========================
// reads
// ========================

func (s *service) Items(ctx context.Context, sessionID string) ([]ResolvedLineItem, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Resolve(st.Lines(), s.catalog.Products(), s.catalog.Services()), nil
}

func (s *service) Detail(ctx context.Context, sessionID string) (CartDetailResponse, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return CartDetailResponse{}, err
	}
	items := Resolve(st.Lines(), s.catalog.Products(), s.catalog.Services())
	return CartDetailResponse{
		Items:      ToItemResponses(items),
		TotalItems: st.TotalItemCount(),
	}, nil
}

func (s *service) Count(ctx context.Context, sessionID string) (int, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return st.TotalItemCount(), nil
}

// ========================
// writes
// ========================

func (s *service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return MapValidationError(err)
	}
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return err
	}
	qty := req.Qty
	if qty == 0 {
		qty = 1
	}

	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}

	key := LineKey{Kind: kind, ItemID: req.ItemID}
	if kind == KindService {
		if _, err := s.findService(req.ItemID); err != nil {
			return err
		}
		return st.Add(ctx, key, qty)
	}

	p, err := s.findProduct(req.ItemID)
	if err != nil {
		return err
	}
	current := 0
	if line, ok := st.Line(key); ok {
		current = line.Quantity
	}
	allowed, err := clampToStock(p, current, current+qty)
	if err != nil {
		return err
	}
	if allowed == current {
		return nil
	}
	return st.Add(ctx, key, allowed-current)
}

func (s *service) AddReservation(ctx context.Context, sessionID string, req AddReservationRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return MapValidationError(err)
	}

	svc, err := s.findService(req.ServiceID)
	if err != nil {
		return err
	}

	date, err := time.Parse(catalog.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return ErrInvalidDate
	}
	if date.Before(dateOnly(s.now())) {
		return ErrDateInPast
	}
	if !svc.IsAvailableOn(date) {
		return ErrDayUnavailable
	}
	slot := strings.TrimSpace(req.TimeSlot)
	if !svc.HasTimeSlot(slot) {
		return ErrSlotUnavailable
	}

	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	return st.AddServiceReservation(ctx, svc.ID, Reservation{
		Date:     date,
		TimeSlot: slot,
		Notes:    req.Notes,
	})
}

func (s *service) UpdateQty(ctx context.Context, sessionID string, key LineKey, req UpdateQtyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return MapValidationError(err)
	}
	if err := s.checkItem(key); err != nil {
		return err
	}

	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}

	qty := *req.Qty
	if key.Kind == KindProduct && qty > 0 {
		p, err := s.findProduct(key.ItemID)
		if err != nil {
			return err
		}
		if qty > p.Stock {
			return ErrOutOfStock
		}
	}
	st.SetQuantity(ctx, key, qty)
	return nil
}

func (s *service) Increment(ctx context.Context, sessionID string, key LineKey) error {
	if err := s.checkItem(key); err != nil {
		return err
	}
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}

	line, ok := st.Line(key)
	if !ok {
		return nil
	}
	if key.Kind == KindProduct {
		p, err := s.findProduct(key.ItemID)
		if err != nil {
			return err
		}
		if line.Quantity >= p.Stock {
			return ErrOutOfStock
		}
	}
	st.SetQuantity(ctx, key, line.Quantity+1)
	return nil
}

// Decrement lowers a line by one. A line at quantity 1 is removed.
func (s *service) Decrement(ctx context.Context, sessionID string, key LineKey) error {
	if !key.Kind.Valid() {
		return ErrInvalidKind
	}
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}

	line, ok := st.Line(key)
	if !ok {
		return nil
	}
	st.SetQuantity(ctx, key, max(0, line.Quantity-1))
	return nil
}

// DeleteItem removes a line. Stale lines may be removed even when the catalog
// no longer lists the item.
func (s *service) DeleteItem(ctx context.Context, sessionID string, key LineKey) error {
	if !key.Kind.Valid() {
		return ErrInvalidKind
	}
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	st.Remove(ctx, key)
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	st.Clear(ctx)
	return nil
}
