package item

import (
	"context"
	"strings"

	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
	"github.com/gearshare/gearshare-backend/internal/user"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Available   *bool
	RequestID   *string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic related to items.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, id, editorID string, req UpdateRequest) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string, page pagination.PageSpec) ([]*Item, int, error)
	Search(ctx context.Context, text string, page pagination.PageSpec) ([]*Item, int, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

// NewService creates a new item Service.
func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}

	// The listing owner must exist.
	owner, err := s.userService.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	it := &Item{
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id, editorID string, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if it.OwnerID != editorID {
		return nil, ErrOnlyOwnerCanEdit
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		it.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrDescriptionRequired
		}
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

func (s *service) ListByOwner(ctx context.Context, ownerID string, page pagination.PageSpec) ([]*Item, int, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByOwner(ctx, ownerID, page)
}

func (s *service) Search(ctx context.Context, text string, page pagination.PageSpec) ([]*Item, int, error) {
	// Blank search text yields an empty result, not a full scan.
	if strings.TrimSpace(text) == "" {
		return []*Item{}, 0, nil
	}
	return s.repo.Search(ctx, text, page)
}
