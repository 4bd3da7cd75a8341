package storage

import (
	"context"
	"io"
)

// Storage abstracts blob storage for uploaded photo files. Paths are
// relative to the storage root.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
