package domain

import "math"

// PageRequest selects a 1-based page of results.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Normalize clamps the limit into [1, maxLimit], falling back to defLimit
// when no limit was given. The page is clamped so that Page*Limit stays
// within an int32.
func (p PageRequest) Normalize(defLimit, maxLimit int) PageRequest {
	if p.Limit < 1 {
		p.Limit = defLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit > 0 && p.Page > math.MaxInt32/p.Limit {
		p.Page = math.MaxInt32 / p.Limit
	}
	return p
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewPagination computes pagination metadata for total rows.
func NewPagination(req PageRequest, total int) Pagination {
	pages := 1
	if total > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    req.Page*req.Limit < total,
		HasPrev:    req.Page > 1,
	}
}
