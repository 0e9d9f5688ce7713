package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var projectOpts = Options{
	ListFields:    []string{"gallery"},
	NumericFields: []string{"budget", "rating"},
	DropFields:    []string{"imageFile", "galleryText"},
}

func TestApplyDropsTransientAndEmptyFields(t *testing.T) {
	draft := map[string]any{
		"title":       "Villa A",
		"imageFile":   "handle-123",
		"galleryText": "a.jpg, b.jpg",
		"location":    "",
		"client":      "  ",
		"testimonial": nil,
		"gallery":     "a.jpg, b.jpg,,  ",
		"budget":      "125000",
	}

	patch := Apply(draft, projectOpts)

	require.Equal(t, "Villa A", patch["title"])
	require.NotContains(t, patch, "imageFile")
	require.NotContains(t, patch, "galleryText")
	require.NotContains(t, patch, "location")
	require.NotContains(t, patch, "client")
	require.NotContains(t, patch, "testimonial")
	require.Equal(t, []string{"a.jpg", "b.jpg"}, patch["gallery"])
	require.Equal(t, 125000.0, patch["budget"])
}

func TestApplySplitsListsBeforeEmptyDrop(t *testing.T) {
	// A list field holding only separators must vanish, not persist as [].
	patch := Apply(map[string]any{"gallery": " , ,, "}, projectOpts)
	require.NotContains(t, patch, "gallery")
}

func TestApplyLeavesNonNumericStringsAlone(t *testing.T) {
	patch := Apply(map[string]any{"budget": "tbd"}, projectOpts)
	require.Equal(t, "tbd", patch["budget"])
}

func TestApplyIsIdempotent(t *testing.T) {
	draft := map[string]any{
		"title":   "Office Tower",
		"gallery": "x.jpg,y.jpg",
		"budget":  "500000",
		"empty":   "",
		"rating":  "4",
	}

	once := Apply(draft, projectOpts)
	twice := Apply(once, projectOpts)
	require.Equal(t, once, twice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	draft := map[string]any{"gallery": "a.jpg,b.jpg", "empty": ""}
	_ = Apply(draft, projectOpts)
	require.Equal(t, "a.jpg,b.jpg", draft["gallery"])
	require.Contains(t, draft, "empty")
}
