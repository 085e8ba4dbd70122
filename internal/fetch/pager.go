package fetch

import "strings"

// Filter returns, in order, the items whose display name contains query
// case-insensitively. An empty query matches everything. items is not modified.
func Filter[T any](items []T, query string, name func(T) string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(name(item)), q) {
			out = append(out, item)
		}
	}
	return out
}

// Pager is the incremental pagination state: the first Page*PageSize items are visible.
type Pager struct {
	Page     int
	PageSize int
}

// NewPager returns a pager on its first page. Non-positive sizes become 1.
func NewPager(pageSize int) Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return Pager{Page: 1, PageSize: pageSize}
}

// Visible returns how many of total items are visible.
func (p Pager) Visible(total int) int {
	n := p.Page * p.PageSize
	if n > total {
		return total
	}
	if n < 0 {
		return 0
	}
	return n
}

// HasMore reports whether total holds items beyond the visible prefix.
func (p Pager) HasMore(total int) bool {
	return p.Page*p.PageSize < total
}

// Next advances one page when more items exist. Past the end it is a no-op.
func (p Pager) Next(total int) Pager {
	if !p.HasMore(total) {
		return p
	}
	p.Page++
	return p
}

// Reset returns to the first page.
func (p Pager) Reset() Pager {
	p.Page = 1
	return p
}

// Window applies Filter and then the pager's visible prefix.
func Window[T any](items []T, query string, p Pager, name func(T) string) []T {
	filtered := Filter(items, query, name)
	return filtered[:p.Visible(len(filtered))]
}

// Sentinel signals "load the next page" when the cursor comes within
// Threshold rows of the last visible item.
type Sentinel struct {
	Threshold int
}

// Reached reports whether cursor is at or past the trigger row for a list
// with visible rows.
func (s Sentinel) Reached(cursor, visible int) bool {
	if visible == 0 {
		return false
	}
	return cursor >= visible-1-s.Threshold
}
