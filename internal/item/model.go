package item

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(apperror.KindNotFound, "item not found")
	ErrOnlyOwnerCanEdit    = apperror.New(apperror.KindForbidden, "only the owner may edit the item")
	ErrNameRequired        = apperror.New(apperror.KindInvalidArgument, "name is required")
	ErrDescriptionRequired = apperror.New(apperror.KindInvalidArgument, "description is required")
	ErrAvailableRequired   = apperror.New(apperror.KindInvalidArgument, "available flag is required")
)

// Item represents a listed item that other users can book.
type Item struct {
	ID          string // UUID
	OwnerID     string
	OwnerName   string
	Name        string
	Description string
	Available   bool
	RequestID   *string // set when the item answers an item request
	CreatedAt   time.Time
}
