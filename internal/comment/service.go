package comment

import (
	"context"
	"strings"

	"github.com/gearshare/gearshare-backend/internal/booking"
)

// bookingFinder is the slice of the booking service the comment module needs:
// the "booking completed" fact that gates commenting.
type bookingFinder interface {
	LatestEndedForItemByUser(ctx context.Context, itemID, userID string) (*booking.Booking, error)
}

// Service defines business logic related to comments.
type Service interface {
	Create(ctx context.Context, itemID, authorID, text string) (*Comment, error)
	ListByItem(ctx context.Context, itemID string) ([]*Comment, error)
}

type service struct {
	repo     Repository
	bookings bookingFinder
}

// NewService creates a new comment Service.
func NewService(repo Repository, bookings bookingFinder) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
	}
}

// Create appends a comment to an item. The author must have a booking of the
// item that has already ended.
func (s *service) Create(ctx context.Context, itemID, authorID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	b, err := s.bookings.LatestEndedForItemByUser(ctx, itemID, authorID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNoCompletedBooking
	}

	cm := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: b.BookerName,
		Text:       text,
	}

	if err := s.repo.Create(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	return s.repo.ListByItem(ctx, itemID)
}
