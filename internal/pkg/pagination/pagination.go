package pagination

import (
	"github.com/gearshare/gearshare-backend/internal/pkg/apperror"
)

var (
	ErrFromMissing  = apperror.New(apperror.KindInvalidArgument, "query parameter 'from' is required when 'size' is set")
	ErrSizeMissing  = apperror.New(apperror.KindInvalidArgument, "query parameter 'size' is required when 'from' is set")
	ErrFromNegative = apperror.New(apperror.KindInvalidArgument, "query parameter 'from' must not be negative")
	ErrSizeNegative = apperror.New(apperror.KindInvalidArgument, "query parameter 'size' must not be negative")
	ErrSizeZero     = apperror.New(apperror.KindInvalidArgument, "query parameter 'size' must not be zero")
)

// PageSpec describes a bounded window over a result set, or the whole set
// when unbounded.
type PageSpec struct {
	page      int
	size      int
	unbounded bool
}

// All returns a PageSpec that places no limit on the result set.
func All() PageSpec {
	return PageSpec{unbounded: true}
}

// New validates (from, size) query parameters and derives a PageSpec.
// Both absent means "return everything". If either is present, both must be.
// The page index is from/size with integer division, so a 'from' that is not
// a multiple of 'size' rounds down to the enclosing size-aligned window.
func New(from, size *int) (PageSpec, error) {
	if from == nil && size == nil {
		return All(), nil
	}
	if from == nil {
		return PageSpec{}, ErrFromMissing
	}
	if size == nil {
		return PageSpec{}, ErrSizeMissing
	}
	if *from < 0 {
		return PageSpec{}, ErrFromNegative
	}
	if *size < 0 {
		return PageSpec{}, ErrSizeNegative
	}
	if *size == 0 {
		return PageSpec{}, ErrSizeZero
	}

	return PageSpec{
		page: *from / *size,
		size: *size,
	}, nil
}

// Unbounded reports whether the spec selects the whole result set.
func (p PageSpec) Unbounded() bool {
	return p.unbounded
}

// Page returns the zero-based page index.
func (p PageSpec) Page() int {
	return p.page
}

// Size returns the page length.
func (p PageSpec) Size() int {
	return p.size
}

// Limit returns the row limit for a store-level query.
func (p PageSpec) Limit() uint64 {
	return uint64(p.size)
}

// Offset returns the row offset for a store-level query.
func (p PageSpec) Offset() uint64 {
	return uint64(p.page * p.size)
}
