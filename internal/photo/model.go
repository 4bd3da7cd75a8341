package photo

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, "photo not found")
	ErrOnlyOwnerCanUpload = apperror.New(apperror.KindForbidden, "only the item's owner may upload photos")
	ErrNotAnImage         = apperror.New(apperror.KindInvalidArgument, "uploaded file is not an image")
	ErrNoThumbnail        = apperror.New(apperror.KindNotFound, "thumbnail not available")
)

// Photo is an uploaded picture of a listed item.
type Photo struct {
	ID            string // UUID
	ItemID        string
	UploaderID    string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}
