// Package sanitize turns form drafts into backend-ready patches. A draft is
// the raw field map a form produces; a patch is what may be written to the
// database. Fields that exist only for form convenience are dropped, numeric
// strings are coerced, and empty values are removed so a partial update
// never blanks a stored column.
package sanitize

import (
	"strconv"
	"strings"
)

// Options configures the transform per entity.
type Options struct {
	// ListFields are comma-separated string fields rebuilt into []string.
	// The split happens before empty values are dropped, so a field holding
	// only commas and spaces is removed rather than persisted as [].
	ListFields []string
	// NumericFields are coerced from string to float64 when they parse.
	NumericFields []string
	// DropFields exist only for form convenience and never persist.
	DropFields []string
}

// Apply transforms a draft into a persistable patch. It is a pure function:
// the input map is not modified, and applying it twice yields the same
// result.
func Apply(draft map[string]any, opts Options) map[string]any {
	patch := make(map[string]any, len(draft))
	for k, v := range draft {
		patch[k] = v
	}

	for _, f := range opts.DropFields {
		delete(patch, f)
	}

	// List reconstruction must precede the empty-value drop.
	for _, f := range opts.ListFields {
		v, ok := patch[f]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			patch[f] = splitList(s)
		}
	}

	for _, f := range opts.NumericFields {
		v, ok := patch[f]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				patch[f] = n
			}
		}
	}

	for k, v := range patch {
		if isEmpty(v) {
			delete(patch, k)
		}
	}

	return patch
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
