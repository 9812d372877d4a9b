package service

import "github.com/Banana-Clint/Bricool/internal/model"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// paginate slices items into the requested window. Page and limit fall
// back to their defaults when unset; filtering always happens before
// this point.
func paginate[T any](items []T, page, limit int) ([]T, model.Pagination) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(items)
	start := (page - 1) * limit
	end := page * limit

	var window []T
	switch {
	case start >= total:
		window = []T{}
	case end > total:
		window = items[start:total]
	default:
		window = items[start:end]
	}

	return window, model.Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  (total + limit - 1) / limit,
		HasNextPage: end < total,
		HasPrevPage: start > 0,
	}
}
