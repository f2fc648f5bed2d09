package booking

import (
	"context"
	"time"
)

// ItemRef is the value copy of an item the booking engine works with.
type ItemRef struct {
	ID          string
	Name        string
	Description string
	Available   bool
	OwnerID     string
	RequestID   *string
}

// UserRef is the value copy of a user the booking engine works with.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

// ItemCatalog resolves items. Implemented by the item module; the booking
// engine reads but does not own the item lifecycle.
type ItemCatalog interface {
	GetItem(ctx context.Context, id string) (*ItemRef, error)
	OwnsAnyItem(ctx context.Context, ownerID string) (bool, error)
}

// UserDirectory resolves users for existence and identity checks.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*UserRef, error)
}

type CreateRequest struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error)
	UpdateStatus(ctx context.Context, userID, bookingID string, approved bool) (*Booking, error)
	FindByID(ctx context.Context, userID, bookingID string) (*Booking, error)
	ListByBooker(ctx context.Context, userID string, state State) ([]*Booking, error)
	ListByOwner(ctx context.Context, userID string, state State) ([]*Booking, error)
}

type service struct {
	repo  Repository
	items ItemCatalog
	users UserDirectory
}

func NewService(repo Repository, items ItemCatalog, users UserDirectory) Service {
	return &service{
		repo:  repo,
		items: items,
		users: users,
	}
}

func (s *service) Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidDateRange
	}

	booker, err := s.users.GetUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	// The owner booking their own item and overlaps with existing
	// approved bookings are both permitted.
	b := &Booking{
		Start:           req.Start,
		End:             req.End,
		ItemID:          item.ID,
		ItemName:        item.Name,
		ItemDescription: item.Description,
		ItemAvailable:   item.Available,
		ItemRequestID:   item.RequestID,
		ItemOwnerID:     item.OwnerID,
		BookerID:        booker.ID,
		BookerName:      booker.Name,
		BookerEmail:     booker.Email,
		Status:          StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, userID, bookingID string, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != userID {
		return nil, ErrAccessDenied
	}

	// Re-deciding an already decided booking overwrites the previous
	// decision; the last writer wins.
	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) FindByID(ctx context.Context, userID, bookingID string) (*Booking, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != userID && b.ItemOwnerID != userID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, userID string, state State) ([]*Booking, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByBooker(ctx, userID, state, time.Now())
}

func (s *service) ListByOwner(ctx context.Context, userID string, state State) ([]*Booking, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	ownsAny, err := s.items.OwnsAnyItem(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ownsAny {
		return nil, ErrNoOwnedItems
	}

	return s.repo.ListByOwner(ctx, userID, state, time.Now())
}
