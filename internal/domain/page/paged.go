package page

import "math"

// Paged is one page of items plus the totals computed by the store.
type Paged[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// TotalPages is ceil(totalItems/pageSize), 0 when there is nothing to page.
func TotalPages(totalItems int64, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)

	return int((totalItems + size - 1) / size)
}

// Offset is the number of items preceding the given zero-based page.
// It saturates at math.MaxInt instead of wrapping, so a huge page reads as past the end.
func Offset(page, pageSize int) int {
	if page <= 0 || pageSize <= 0 {
		return 0
	}
	if page > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return page * pageSize
}

func New[T any](items []T, page, pageSize int, totalItems int64) Paged[T] {
	if items == nil {
		items = []T{}
	}

	return Paged[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, pageSize),
	}
}

// Map converts the items of p with fn and keeps the page metadata untouched.
func Map[T, U any](p Paged[T], fn func(T) U) Paged[U] {
	items := make([]U, len(p.Items))
	for idx, it := range p.Items {
		items[idx] = fn(it)
	}

	return Paged[U]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
