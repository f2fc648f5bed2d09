package item

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is a mutex-guarded in-memory item and comment store.
type MemoryRepository struct {
	mu       sync.RWMutex
	items    map[string]Item
	comments map[string]Comment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:    make(map[string]Item),
		comments: make(map[string]Comment),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it.ID = uuid.NewString()
	r.items[it.ID] = *it
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *MemoryRepository) Update(ctx context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[it.ID]; !ok {
		return ErrNotFound
	}
	r.items[it.ID] = *it
	return nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Item, error) {
	return r.list(func(it *Item) bool { return it.OwnerID == ownerID }), nil
}

func (r *MemoryRepository) OwnsAny(ctx context.Context, ownerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Search(ctx context.Context, text string) ([]*Item, error) {
	needle := strings.ToLower(text)
	return r.list(func(it *Item) bool {
		if !it.Available {
			return false
		}
		return strings.Contains(strings.ToLower(it.Name), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle)
	}), nil
}

func (r *MemoryRepository) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	return r.list(func(it *Item) bool {
		return it.RequestID != nil && *it.RequestID == requestID
	}), nil
}

func (r *MemoryRepository) list(match func(*Item) bool) []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*Item
	for _, it := range r.items {
		if !match(&it) {
			continue
		}
		found := it
		items = append(items, &found)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *MemoryRepository) CreateComment(ctx context.Context, cm *Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cm.ID = uuid.NewString()
	r.comments[cm.ID] = *cm
	return nil
}

func (r *MemoryRepository) ListComments(ctx context.Context, itemID string) ([]*Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var comments []*Comment
	for _, cm := range r.comments {
		if cm.ItemID != itemID {
			continue
		}
		found := cm
		comments = append(comments, &found)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Created.Before(comments[j].Created) })
	return comments, nil
}
