package booking

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
)

var (
	ErrNotFound                = apperror.New(apperror.KindNotFound, "booking not found")
	ErrItemNotFound            = apperror.New(apperror.KindNotFound, "item not found")
	ErrItemUnavailable         = apperror.New(apperror.KindConflict, "item is not available for booking")
	ErrOwnItem                 = apperror.New(apperror.KindConflict, "cannot book own item")
	ErrStartAfterEnd           = apperror.New(apperror.KindInvalidArgument, "start time must be before end time")
	ErrStartEqualsEnd          = apperror.New(apperror.KindInvalidArgument, "start time must not equal end time")
	ErrOnlyOwnerCanApprove     = apperror.New(apperror.KindForbidden, "only the owner may approve the booking")
	ErrOnlyPartiesCanView      = apperror.New(apperror.KindForbidden, "only the booker or the owner may view the booking")
	ErrStatusChangeNotRequired = apperror.New(apperror.KindConflict, "status change not required")
	ErrUnknownState            = apperror.New(apperror.KindInvalidArgument, "Unknown state: UNSUPPORTED_STATUS")
)

// Status is the approval status of a booking.
//
// WAITING  - new booking, waiting for the owner's decision.
// APPROVED - confirmed by the item's owner.
// REJECTED - declined by the item's owner.
// CANCELED - withdrawn by the booker. Part of the status taxonomy, but no
// operation currently produces it.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// Booking is a reservation of an item for a time window, subject to owner
// approval. Item and booker names are denormalized from joins on read.
type Booking struct {
	ID         string // UUID
	ItemID     string
	ItemName   string
	OwnerID    string // owner of the booked item
	BookerID   string
	BookerName string
	Start      time.Time
	End        time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter is a store-level query descriptor for booking lists. Exactly one of
// BookerID/OwnerID scopes the set; the temporal fields come from Classify.
// Results are always ordered by start descending.
type Filter struct {
	BookerID string
	OwnerID  string

	Status     Status     // non-empty filters by status equality
	EndBefore  *time.Time // end < t
	StartAfter *time.Time // start > t
	CurrentAt  *time.Time // start <= t <= end, inclusive on both endpoints

	Page pagination.PageSpec
}
