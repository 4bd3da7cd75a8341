package user

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(apperror.KindConflict, "email already used")
	ErrEmailRequired      = apperror.New(apperror.KindInvalidArgument, "email is required")
	ErrNameRequired       = apperror.New(apperror.KindInvalidArgument, "name is required")
	ErrInvalidCredentials = apperror.New(apperror.KindInvalidArgument, "invalid email or password")
)

// User represents a registered user of the sharing service.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash *string // nil for users created via the legacy header flow
	CreatedAt    time.Time
}
