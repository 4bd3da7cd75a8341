package booking

import (
	"context"
	"time"

	"github.com/gearshare/gearshare-backend/internal/item"
	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
	"github.com/gearshare/gearshare-backend/internal/user"
)

// Clock supplies the current instant. Injected so temporal classification is
// testable with a fixed "now".
type Clock func() time.Time

type CreateRequest struct {
	BookerID string
	ItemID   string
	Start    time.Time
	End      time.Time
}

// Service defines the booking lifecycle operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Approve(ctx context.Context, ownerID, bookingID string, approved bool) (*Booking, error)
	GetByUser(ctx context.Context, bookingID, userID string) (*Booking, error)
	ListByBooker(ctx context.Context, userID, state string, from, size *int) ([]*Booking, int, error)
	ListByOwner(ctx context.Context, ownerID, state string, from, size *int) ([]*Booking, int, error)

	LastForItem(ctx context.Context, itemID string) (*Booking, error)
	NextForItem(ctx context.Context, itemID string) (*Booking, error)
	LatestEndedForItemByUser(ctx context.Context, itemID, userID string) (*Booking, error)
}

type service struct {
	repo      Repository
	users     user.Service
	validator *Validator
	now       Clock
}

// NewService creates a booking Service using the system clock.
func NewService(repo Repository, items item.Service, users user.Service) Service {
	return NewServiceWithClock(repo, items, users, time.Now)
}

// NewServiceWithClock creates a booking Service with an injected clock.
func NewServiceWithClock(repo Repository, items item.Service, users user.Service, now Clock) Service {
	return &service{
		repo:      repo,
		users:     users,
		validator: NewValidator(items, users),
		now:       now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	it, booker, err := s.validator.ValidateCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		ItemID:     it.ID,
		ItemName:   it.Name,
		OwnerID:    it.OwnerID,
		BookerID:   booker.ID,
		BookerName: booker.Name,
		Start:      req.Start,
		End:        req.End,
		Status:     StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, ownerID, bookingID string, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !CanApprove(b, ownerID) {
		return nil, ErrOnlyOwnerCanApprove
	}

	target := StatusRejected
	if approved {
		target = StatusApproved
	}

	// Changing to the current status is a user error, not a no-op success.
	if b.Status == target {
		return nil, ErrStatusChangeNotRequired
	}

	// Compare-and-set against the status we observed. A concurrent approval
	// that got there first makes the row count zero.
	ok, err := s.repo.UpdateStatusFrom(ctx, b.ID, b.Status, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStatusChangeNotRequired
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetByUser(ctx context.Context, bookingID, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !CanView(b, userID) {
		return nil, ErrOnlyPartiesCanView
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, userID, state string, from, size *int) ([]*Booking, int, error) {
	f, err := s.listFilter(ctx, userID, state, from, size)
	if err != nil {
		return nil, 0, err
	}
	f.BookerID = userID

	return s.repo.List(ctx, f)
}

func (s *service) ListByOwner(ctx context.Context, ownerID, state string, from, size *int) ([]*Booking, int, error) {
	f, err := s.listFilter(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, 0, err
	}
	f.OwnerID = ownerID

	return s.repo.List(ctx, f)
}

// listFilter runs the shared list-validation pipeline: the subject user must
// exist (listing for an unknown user is not an empty list), then paging, then
// state classification.
func (s *service) listFilter(ctx context.Context, userID, state string, from, size *int) (Filter, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return Filter{}, err
	}

	page, err := pagination.New(from, size)
	if err != nil {
		return Filter{}, err
	}

	st, err := ParseState(state)
	if err != nil {
		return Filter{}, err
	}

	f := Classify(st, s.now())
	f.Page = page
	return f, nil
}

func (s *service) LastForItem(ctx context.Context, itemID string) (*Booking, error) {
	return s.repo.LastForItem(ctx, itemID, s.now())
}

func (s *service) NextForItem(ctx context.Context, itemID string) (*Booking, error) {
	return s.repo.NextForItem(ctx, itemID, s.now())
}

func (s *service) LatestEndedForItemByUser(ctx context.Context, itemID, userID string) (*Booking, error) {
	return s.repo.LatestEndedForItemByUser(ctx, itemID, userID, s.now())
}
