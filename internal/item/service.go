package item

import (
	"context"
	"time"

	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/user"
)

type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, userID, itemID string, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	FindByID(ctx context.Context, userID, itemID string) (*Details, error)
	FindByOwner(ctx context.Context, userID string) ([]*Details, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	AddComment(ctx context.Context, userID, itemID, text string) (*Comment, error)
	OwnsAny(ctx context.Context, ownerID string) (bool, error)
}

type service struct {
	repo     Repository
	users    user.Service
	bookings booking.Repository
}

func NewService(repo Repository, users user.Service, bookings booking.Repository) Service {
	return &service{
		repo:     repo,
		users:    users,
		bookings: bookings,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     owner.ID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, userID, itemID string, req UpdateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) FindByID(ctx context.Context, userID, itemID string) (*Details, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.loadDetails(ctx, it)
}

func (s *service) FindByOwner(ctx context.Context, userID string) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]*Details, len(items))
	for i, it := range items {
		d, err := s.loadDetails(ctx, it)
		if err != nil {
			return nil, err
		}
		details[i] = d
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	if text == "" {
		return nil, nil
	}
	return s.repo.Search(ctx, text)
}

func (s *service) AddComment(ctx context.Context, userID, itemID, text string) (*Comment, error) {
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	completed, err := s.bookings.HasCompletedBooking(ctx, it.ID, author.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrCommentNotAllowed
	}

	cm := &Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    time.Now(),
	}
	if err := s.repo.CreateComment(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *service) OwnsAny(ctx context.Context, ownerID string) (bool, error) {
	return s.repo.OwnsAny(ctx, ownerID)
}

// loadDetails attaches comments and the booking summary to an item view.
// The summary takes the single most-recently-starting booking across ALL
// of the owner's items and exposes it as next or last depending on
// whether it starts after now; the other side stays nil. The summary is
// keyed by owner, not by item.
func (s *service) loadDetails(ctx context.Context, it *Item) (*Details, error) {
	comments, err := s.repo.ListComments(ctx, it.ID)
	if err != nil {
		return nil, err
	}

	d := &Details{Item: *it, Comments: comments}

	now := time.Now()
	bookings, err := s.bookings.ListByOwner(ctx, it.OwnerID, booking.StateAll, now)
	if err != nil {
		return nil, err
	}
	if len(bookings) > 0 {
		latest := bookings[0]
		if latest.Start.After(now) {
			d.NextBooking = latest
		} else {
			d.LastBooking = latest
		}
	}
	return d, nil
}
