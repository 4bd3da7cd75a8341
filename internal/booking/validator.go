package booking

import (
	"context"
	"errors"
	"time"

	"github.com/gearshare/gearshare-backend/internal/item"
	"github.com/gearshare/gearshare-backend/internal/user"
)

// Validator enforces the creation-time invariants of a booking. Checks run
// in a fixed order and the first failure wins.
type Validator struct {
	items item.Service
	users user.Service
}

func NewValidator(items item.Service, users user.Service) *Validator {
	return &Validator{
		items: items,
		users: users,
	}
}

// ValidateTimeRange rejects inverted and zero-length windows with distinct
// messages; clients pattern-match the text.
func ValidateTimeRange(start, end time.Time) error {
	if start.After(end) {
		return ErrStartAfterEnd
	}
	if start.Equal(end) {
		return ErrStartEqualsEnd
	}
	return nil
}

// ValidateCreate checks a booking candidate and resolves its item and booker.
// Order: time window, item existence and availability, booker existence,
// self-booking.
func (v *Validator) ValidateCreate(ctx context.Context, req CreateRequest) (*item.Item, *user.User, error) {
	if err := ValidateTimeRange(req.Start, req.End); err != nil {
		return nil, nil, err
	}

	it, err := v.items.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, nil, ErrItemNotFound
		}
		return nil, nil, err
	}
	if !it.Available {
		return nil, nil, ErrItemUnavailable
	}

	booker, err := v.users.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, nil, err
	}

	if it.OwnerID == booker.ID {
		return nil, nil, ErrOwnItem
	}

	return it, booker, nil
}
