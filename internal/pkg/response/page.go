package response

// PageResponse is the standard wrapper for list endpoints.
type PageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewPageResponse wraps list items with their total count.
func NewPageResponse[T any](items []T, total int) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items: items,
		Total: total,
	}
}
