package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is a mutex-guarded in-memory record store. Records are
// stored fully hydrated (the service resolves item and booker fields at
// creation), so queries never reach back into other modules.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]Booking
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[string]Booking)}
}

func (r *MemoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.NewString()
	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryRepository) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryRepository) ListByBooker(ctx context.Context, bookerID string, state State, now time.Time) ([]*Booking, error) {
	return r.list(func(b *Booking) bool { return b.BookerID == bookerID }, bookerPredicates, state, now)
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string, state State, now time.Time) ([]*Booking, error) {
	return r.list(func(b *Booking) bool { return b.ItemOwnerID == ownerID }, ownerPredicates, state, now)
}

func (r *MemoryRepository) list(scope func(*Booking) bool, predicates map[State]statePredicate, state State, now time.Time) ([]*Booking, error) {
	predicate, ok := predicates[state]
	if !ok {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Booking
	for _, b := range r.bookings {
		if !scope(&b) || !predicate(&b, now) {
			continue
		}
		match := b
		result = append(result, &match)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.After(result[j].Start) })
	return result, nil
}

func (r *MemoryRepository) HasCompletedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID &&
			b.Status == StatusApproved && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}
