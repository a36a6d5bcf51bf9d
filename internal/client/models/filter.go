package models

// DefaultPageSize matches the backend's default notes page size.
const DefaultPageSize = 12

// Filters is the UI-session-scoped filter state for note listings.
// Zero values mean "not filtering on this dimension".
type Filters struct {
	Search     string
	Category   string
	Labels     []string
	Drafts     *bool
	Visibility string
}

// IsZero reports whether no filter dimension is set.
func (f Filters) IsZero() bool {
	return f.Search == "" && f.Category == "" && len(f.Labels) == 0 &&
		f.Drafts == nil && f.Visibility == ""
}

// Pagination is the normalized listing metadata.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// PaginationFor derives complete pagination metadata from a total count,
// the current page and the page limit.
func PaginationFor(totalCount, page, limit int) Pagination {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages := (totalCount + limit - 1) / limit
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
