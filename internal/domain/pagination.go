package domain

// Pagination defaults and bounds for list queries.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams holds offset-based pagination parameters for list queries.
// Page is 1-indexed.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Normalize clamps the parameters to valid ranges: page >= 1 and
// 1 <= page size <= MaxPageSize (defaulting to DefaultPageSize).
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size to use as a row limit.
func (p PaginationParams) Limit() int {
	return p.PageSize
}
