// Package paging normalizes page/limit query parameters and builds the
// pagination block returned by every listing endpoint.
package paging

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize clamps page to >= 1 and limit to [1, MaxLimit], applying
// defaults for zero values.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// New computes totalPages = ceil(total/limit).
func New(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
