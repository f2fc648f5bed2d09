package request

import (
	"context"
	"time"

	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/user"
)

type Service interface {
	Create(ctx context.Context, userID, description string) (*Request, error)
	ListOwn(ctx context.Context, userID string) ([]*Details, error)
	ListAll(ctx context.Context, userID string, from, size int) ([]*Details, error)
	FindByID(ctx context.Context, userID, requestID string) (*Details, error)
}

type service struct {
	repo  Repository
	users user.Service
	items item.Repository
}

func NewService(repo Repository, users user.Service, items item.Repository) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
	}
}

func (s *service) Create(ctx context.Context, userID, description string) (*Request, error) {
	requester, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Description: description,
		RequesterID: requester.ID,
		Created:     time.Now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.loadDetails(ctx, requests)
}

func (s *service) ListAll(ctx context.Context, userID string, from, size int) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if from < 0 || size <= 0 {
		return nil, ErrInvalidPaging
	}

	requests, err := s.repo.ListAll(ctx, from, size)
	if err != nil {
		return nil, err
	}
	return s.loadDetails(ctx, requests)
}

func (s *service) FindByID(ctx context.Context, userID, requestID string) (*Details, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	details, err := s.loadDetails(ctx, []*Request{req})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *service) loadDetails(ctx context.Context, requests []*Request) ([]*Details, error) {
	details := make([]*Details, len(requests))
	for i, req := range requests {
		answering, err := s.items.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		details[i] = &Details{Request: *req, Items: answering}
	}
	return details, nil
}
