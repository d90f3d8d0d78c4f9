package cart

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"go-storefront-api/internal/storage"

	"go.uber.org/zap"
)

// Snapshot is the cart state handed to change listeners.
type Snapshot struct {
	Lines      []Line
	TotalItems int
}

type Listener func(Snapshot)

type listenerEntry struct {
	id int
	fn Listener
}

type StoreOption func(*Store)

func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.ttl = ttl }
}

func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store owns one session's cart. Every mutation is written through to the KV
// under a single key, and the key is deleted once the cart is empty. Storage
// failures are logged and never undo the in-memory change.
type Store struct {
	mu         sync.Mutex
	kv         storage.KV
	key        string
	ttl        time.Duration
	logger     *zap.Logger
	order      []LineKey
	lines      map[LineKey]Line
	totalItems int
	listeners  []listenerEntry
	nextID     int
}

func NewStore(kv storage.KV, key string, opts ...StoreOption) *Store {
	s := &Store{
		kv:     kv,
		key:    key,
		logger: zap.NewNop(),
		lines:  make(map[LineKey]Line),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("key", key))
	return s
}

// Load replaces the in-memory cart with the persisted record, if any.
// Unreadable records are discarded.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to read persisted cart", zap.Error(err))
		return
	}

	lines, dropped, err := decodeLines(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable cart record", zap.Error(err))
		return
	}
	if dropped > 0 {
		s.logger.Warn("dropped invalid cart lines", zap.Int("dropped", dropped))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.lines = make(map[LineKey]Line, len(lines))
	for _, l := range lines {
		s.order = append(s.order, l.Key())
		s.lines[l.Key()] = l
	}
	s.recountLocked()
}

// Add increments an existing line by qty or appends a new line without
// reservation fields. Stock limits are the caller's concern.
func (s *Store) Add(ctx context.Context, key LineKey, qty int) error {
	if !key.Kind.Valid() {
		return ErrInvalidKind
	}
	if qty < 1 {
		return ErrInvalidQty
	}

	s.mutate(ctx, func() bool {
		if line, ok := s.lines[key]; ok {
			line.Quantity += qty
			s.lines[key] = line
			return true
		}
		s.order = append(s.order, key)
		s.lines[key] = Line{ItemID: key.ItemID, Kind: key.Kind, Quantity: qty}
		return true
	})
	return nil
}

// AddServiceReservation creates or replaces the line for serviceID with a
// single booked slot. A previous reservation on the same line is discarded.
func (s *Store) AddServiceReservation(ctx context.Context, serviceID int, r Reservation) error {
	slot := strings.TrimSpace(r.TimeSlot)
	if r.Date.IsZero() || slot == "" {
		return ErrInvalidReservation
	}

	date := dateOnly(r.Date)
	key := ServiceKey(serviceID)
	line := Line{
		ItemID:           serviceID,
		Kind:             KindService,
		Quantity:         1,
		ReservationDate:  &date,
		ReservationTime:  slot,
		ReservationNotes: strings.TrimSpace(r.Notes),
	}

	s.mutate(ctx, func() bool {
		if _, ok := s.lines[key]; !ok {
			s.order = append(s.order, key)
		}
		s.lines[key] = line
		return true
	})
	return nil
}

// SetQuantity updates a line in place, keeping its reservation. A quantity of
// zero or less removes the line. Unknown keys are ignored.
func (s *Store) SetQuantity(ctx context.Context, key LineKey, qty int) {
	s.mutate(ctx, func() bool {
		line, ok := s.lines[key]
		if !ok {
			return false
		}
		if qty <= 0 {
			s.deleteLocked(key)
			return true
		}
		line.Quantity = qty
		s.lines[key] = line
		return true
	})
}

func (s *Store) Remove(ctx context.Context, key LineKey) {
	s.mutate(ctx, func() bool {
		if _, ok := s.lines[key]; !ok {
			return false
		}
		s.deleteLocked(key)
		return true
	})
}

// Clear empties the cart. The persisted key is deleted even when the cart was
// already empty in memory.
func (s *Store) Clear(ctx context.Context) {
	s.mutate(ctx, func() bool {
		s.order = nil
		s.lines = make(map[LineKey]Line)
		return true
	})
}

func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesLocked()
}

func (s *Store) Line(key LineKey) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[key]
	return line.clone(), ok
}

// Subscribe registers fn to run after every mutation. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(e listenerEntry) bool { return e.id == id })
	}
}

func (s *Store) mutate(ctx context.Context, fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	s.recountLocked()
	snap := Snapshot{Lines: s.linesLocked(), TotalItems: s.totalItems}
	s.persistLocked(ctx, snap.Lines)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, e := range s.listeners {
		listeners = append(listeners, e.fn)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (s *Store) persistLocked(ctx context.Context, lines []Line) {
	if len(lines) == 0 {
		if err := s.kv.Delete(ctx, s.key); err != nil {
			s.logger.Warn("failed to delete persisted cart", zap.Error(err))
		}
		return
	}

	payload, err := encodeLines(lines)
	if err != nil {
		s.logger.Warn("failed to encode cart", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key, payload, s.ttl); err != nil {
		s.logger.Warn("failed to persist cart", zap.Error(err))
	}
}

func (s *Store) deleteLocked(key LineKey) {
	delete(s.lines, key)
	s.order = slices.DeleteFunc(s.order, func(k LineKey) bool { return k == key })
}

func (s *Store) recountLocked() {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	s.totalItems = total
}

func (s *Store) linesLocked() []Line {
	out := make([]Line, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.lines[k].clone())
	}
	return out
}
