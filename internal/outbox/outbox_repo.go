package outbox

import (
	"context"
	"sync"

	"go-storefront-api/internal/events"

	"github.com/google/uuid"
)

const DefaultMaxAttempts = 5

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, e events.Event) error
	ListPending(ctx context.Context, limit int) ([]events.Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type entry struct {
	event    events.Event
	attempts int
}

// MemoryRepository keeps pending events in append order. Sent events are
// dropped; an event that fails maxAttempts times is parked and no longer
// listed.
type MemoryRepository struct {
	mu          sync.Mutex
	maxAttempts int
	pending     []*entry
	parked      []events.Event
}

func NewMemoryRepository(maxAttempts int) *MemoryRepository {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &MemoryRepository{maxAttempts: maxAttempts}
}

func (r *MemoryRepository) Append(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, &entry{event: e})
	return nil
}

func (r *MemoryRepository) ListPending(_ context.Context, limit int) ([]events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.pending)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]events.Event, 0, n)
	for _, e := range r.pending[:n] {
		out = append(out, e.event)
	}
	return out, nil
}

func (r *MemoryRepository) MarkSent(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexLocked(id); i >= 0 {
		r.pending = append(r.pending[:i], r.pending[i+1:]...)
	}
	return nil
}

func (r *MemoryRepository) MarkFailed(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(id)
	if i < 0 {
		return nil
	}
	e := r.pending[i]
	e.attempts++
	if e.attempts >= r.maxAttempts {
		r.parked = append(r.parked, e.event)
		r.pending = append(r.pending[:i], r.pending[i+1:]...)
	}
	return nil
}

// Pending lists events still waiting for delivery, oldest first.
func (r *MemoryRepository) Pending() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, 0, len(r.pending))
	for _, e := range r.pending {
		out = append(out, e.event)
	}
	return out
}

// Parked lists events that exhausted their attempts.
func (r *MemoryRepository) Parked() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.parked...)
}

func (r *MemoryRepository) indexLocked(id uuid.UUID) int {
	for i, e := range r.pending {
		if e.event.ID == id {
			return i
		}
	}
	return -1
}
