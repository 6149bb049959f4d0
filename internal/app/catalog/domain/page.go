package domain

// PaginatedResult is one page of catalog results together with the totals the
// server reported (or the best synthesis the gateway could make).
//
// Invariant: TotalPages >= 1, even when Total is 0.
type PaginatedResult struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
}

// NewPaginatedResult normalizes raw page data into a PaginatedResult.
// A non-positive limit falls back to the item count (or 1 for an empty page);
// a non-positive page falls back to 1. TotalPages = max(1, ceil(total/limit)).
func NewPaginatedResult(items []Product, total, page, limit int) PaginatedResult {
	if limit <= 0 {
		limit = len(items)
		if limit == 0 {
			limit = 1
		}
	}
	if page <= 0 {
		page = 1
	}
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginatedResult{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}
}
