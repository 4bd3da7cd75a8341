package itemrequest

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(apperror.KindNotFound, "item request not found")
	ErrDescriptionRequired = apperror.New(apperror.KindInvalidArgument, "description must not be empty")
)

// Request is a wish for an item that is not listed yet. Other users can
// answer it by creating an item that references the request.
type Request struct {
	ID            string // UUID
	RequesterID   string
	RequesterName string
	Description   string
	CreatedAt     time.Time
}
