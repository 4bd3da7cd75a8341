package itemrequest

import (
	"context"
	"strings"

	"github.com/gearshare/gearshare-backend/internal/item"
	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
	"github.com/gearshare/gearshare-backend/internal/user"
)

// RequestWithAnswers pairs a request with the items listed in answer to it.
type RequestWithAnswers struct {
	Request *Request
	Answers []*item.Item
}

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, requesterID, description string) (*Request, error)
	GetByID(ctx context.Context, id, userID string) (*RequestWithAnswers, error)
	ListOwn(ctx context.Context, requesterID string) ([]*RequestWithAnswers, error)
	ListOthers(ctx context.Context, userID string, page pagination.PageSpec) ([]*Request, int, error)
}

type service struct {
	repo  Repository
	items item.Repository
	users user.Service
}

// NewService creates a new item request Service.
func NewService(repo Repository, items item.Repository, users user.Service) Service {
	return &service{
		repo:  repo,
		items: items,
		users: users,
	}
}

func (s *service) Create(ctx context.Context, requesterID, description string) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	req := &Request{
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
		Description:   description,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*RequestWithAnswers, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.items.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &RequestWithAnswers{Request: req, Answers: answers}, nil
}

func (s *service) ListOwn(ctx context.Context, requesterID string) ([]*RequestWithAnswers, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	out := make([]*RequestWithAnswers, len(requests))
	for i, req := range requests {
		answers, err := s.items.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		out[i] = &RequestWithAnswers{Request: req, Answers: answers}
	}
	return out, nil
}

func (s *service) ListOthers(ctx context.Context, userID string, page pagination.PageSpec) ([]*Request, int, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListOthers(ctx, userID, page)
}
