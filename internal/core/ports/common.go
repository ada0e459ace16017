package ports

// Actor identifies the authenticated caller for operations that are scoped
// or gated by ownership. Built by the HTTP layer from the token claims.
type Actor struct {
	ID   int64
	Role string
}

// Pagination carries the already-defaulted page controls: page >= 1,
// limit >= 1. The HTTP layer falls back to page=1, limit=10 when a value is
// absent or not numeric.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(totalCount / limit).
func (p Pagination) TotalPages(totalCount int64) int {
	return int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
}
