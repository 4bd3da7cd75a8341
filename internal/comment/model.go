package comment

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
)

var (
	ErrTextRequired       = apperror.New(apperror.KindInvalidArgument, "comment text must not be empty")
	ErrNoCompletedBooking = apperror.New(apperror.KindInvalidArgument, "no completed booking of the item by this user")
)

// Comment is an append-only note a booker leaves on an item after a
// completed booking.
type Comment struct {
	ID         string // UUID
	ItemID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}
