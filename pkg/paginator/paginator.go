package paginator

// Offset pagination shared by every feed listing.
// Contract: pages are 1-based; an invalid page degrades to 1 and a page
// past the end yields an empty result, never an error.

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps raw page/limit values into a valid Params.
func Normalize(page, limit int) Params {
	return NormalizeWithDefault(page, limit, DefaultPageSize)
}

// NormalizeWithDefault is Normalize with a configurable fallback page
// size, for callers whose default comes from configuration.
func NormalizeWithDefault(page, limit, fallback int) Params {
	if fallback < 1 {
		fallback = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallback
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the SQL OFFSET for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes the position of a page inside the full result set.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// BuildMeta computes pagination metadata for a page over total items.
func BuildMeta(p Params, total int) Meta {
	totalPages := total / p.Limit
	if total%p.Limit != 0 {
		totalPages++
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1 && total > 0,
	}
}
