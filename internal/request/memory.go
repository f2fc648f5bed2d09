package request

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is a mutex-guarded in-memory request store.
type MemoryRepository struct {
	mu       sync.RWMutex
	requests map[string]Request
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{requests: make(map[string]Request)}
}

func (r *MemoryRepository) Create(ctx context.Context, req *Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = uuid.NewString()
	r.requests[req.ID] = *req
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &req, nil
}

func (r *MemoryRepository) ListByRequester(ctx context.Context, requesterID string) ([]*Request, error) {
	return r.list(func(req *Request) bool { return req.RequesterID == requesterID }, 0, -1), nil
}

func (r *MemoryRepository) ListAll(ctx context.Context, offset, limit int) ([]*Request, error) {
	return r.list(func(*Request) bool { return true }, offset, limit), nil
}

func (r *MemoryRepository) list(match func(*Request) bool, offset, limit int) []*Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requests []*Request
	for _, req := range r.requests {
		if !match(&req) {
			continue
		}
		found := req
		requests = append(requests, &found)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].Created.After(requests[j].Created) })

	if offset > len(requests) {
		return nil
	}
	requests = requests[offset:]
	if limit >= 0 && limit < len(requests) {
		requests = requests[:limit]
	}
	return requests
}
