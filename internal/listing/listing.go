// Package listing implements the pagination contract shared by every list
// endpoint: 1-indexed pages, a fixed set of page sizes, and clamping of
// out-of-range pages to the last non-empty page instead of erroring.
package listing

import "strings"

// PageSizes is the allowed page-size set exposed by the table UI.
var PageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 10

// Params are the caller-supplied list parameters. SearchText empty means no
// text filter.
type Params struct {
	SearchText string `json:"searchText"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

// Normalize trims the search text, floors the page at 1 and snaps the page
// size onto the allowed set.
func (p Params) Normalize() Params {
	p.SearchText = strings.TrimSpace(p.SearchText)
	if p.Page < 1 {
		p.Page = 1
	}
	if !allowedSize(p.PageSize) {
		p.PageSize = DefaultPageSize
	}
	return p
}

func allowedSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// ClampSkip computes the fetch offset for a page. An out-of-range page is
// silently clamped to the last non-empty page: skip falls back to
// totalCount-pageSize, floored at zero. The result is always within
// [0, max(totalCount-pageSize, 0)].
func ClampSkip(page, pageSize, totalCount int) int {
	skip := (page - 1) * pageSize
	if skip >= totalCount {
		skip = totalCount - pageSize
	}
	if skip < 0 {
		skip = 0
	}
	return skip
}

// TotalPages is ceil(totalCount/pageSize); zero when the filter matches
// nothing.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Page is one page of projected records plus the page count for the filter.
type Page[T any] struct {
	Records    []T
	TotalPages int
}
