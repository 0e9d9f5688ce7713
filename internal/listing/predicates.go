package listing

import "strings"

// TextSearch matches items whose extracted fields contain the query,
// case-insensitively. An empty query matches everything.
func TextSearch[T any](query string, fields func(T) []string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals matches items whose extracted field equals the wanted value.
// An empty wanted value matches everything.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if strings.TrimSpace(want) == "" {
		return nil
	}
	return func(item T) bool { return field(item) == want }
}

// EqualsFold is Equals with case-insensitive comparison. Used where stored
// values predate a casing convention change (job statuses).
func EqualsFold[T any](want string, field func(T) string) Predicate[T] {
	if strings.TrimSpace(want) == "" {
		return nil
	}
	return func(item T) bool { return strings.EqualFold(field(item), want) }
}
