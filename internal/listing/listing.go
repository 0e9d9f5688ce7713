// Package listing implements the in-memory list pipeline the admin screens
// share: the full fetched collection is filtered by composed predicates,
// sorted, and sliced into fixed-size pages. There is no query pushdown; the
// backend returns the whole collection and everything past that point is
// client-side.
package listing

import "sort"

// Predicate reports whether an item should remain in the list.
type Predicate[T any] func(T) bool

// Page is one slice of the filtered, sorted collection.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	Total      int
	TotalPages int
}

// Filter keeps the items matching every predicate. Nil predicates are
// ignored, so optional filters compose without special-casing.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		keep := true
		for _, p := range preds {
			if p != nil && !p(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}

// Sort returns a sorted copy using the comparator. A nil comparator returns
// the input order unchanged. The sort is stable so equal items keep their
// fetch order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// Paginate slices the filtered set into the requested page. Page numbers are
// 1-based; out-of-range pages return an empty item slice with correct
// totals. TotalPages is ceil(total/pageSize).
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
