package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	Name     string
	Status   string
	Category string
	Assignee string
}

var records = []record{
	{"Villa Aurora", "completed", "residential", "a"},
	{"Bridge North", "in_progress", "infrastructure", "b"},
	{"Clinic West", "completed", "healthcare", "a"},
	{"Mall Central", "planning", "commercial", ""},
	{"Villa Breeze", "completed", "residential", "b"},
	{"School East", "in_progress", "education", "a"},
}

func searchFields(r record) []string { return []string{r.Name, r.Category} }

func TestFilterIsIntersectionOfPredicates(t *testing.T) {
	search := TextSearch("villa", searchFields)
	status := Equals("completed", func(r record) string { return r.Status })
	category := Equals("residential", func(r record) string { return r.Category })

	got := Filter(records, search, status, category)

	// Must equal the intersection of the per-field matches.
	var want []record
	for _, r := range records {
		if search(r) && status(r) && category(r) {
			want = append(want, r)
		}
	}
	require.Equal(t, want, got)
	require.Len(t, got, 2)
}

func TestFilterIgnoresNilPredicates(t *testing.T) {
	got := Filter(records, TextSearch("", searchFields), Equals("", func(r record) string { return r.Status }))
	require.Equal(t, records, got)
}

func TestEqualsFoldMatchesLegacyCasing(t *testing.T) {
	jobs := []record{{Status: "Open"}, {Status: "open"}, {Status: "Closed"}}
	got := Filter(jobs, EqualsFold("Open", func(r record) string { return r.Status }))
	require.Len(t, got, 2)
}

func TestSortIsStableAndNonDestructive(t *testing.T) {
	byStatus := func(a, b record) bool { return a.Status < b.Status }
	sorted := Sort(records, byStatus)

	require.Equal(t, "Villa Aurora", records[0].Name, "input must not be reordered")
	// Equal statuses keep fetch order.
	require.Equal(t, "Villa Aurora", sorted[0].Name)
	require.Equal(t, "Clinic West", sorted[1].Name)
	require.Equal(t, "Villa Breeze", sorted[2].Name)
}

func TestPaginateCoversFilteredSetExactlyOnce(t *testing.T) {
	for _, pageSize := range []int{1, 2, 3, 4, 6, 15} {
		first := Paginate(records, 1, pageSize)
		wantPages := (len(records) + pageSize - 1) / pageSize
		require.Equal(t, wantPages, first.TotalPages, "page size %d", pageSize)

		var all []record
		for p := 1; p <= first.TotalPages; p++ {
			all = append(all, Paginate(records, p, pageSize).Items...)
		}
		require.Equal(t, records, all, "page size %d", pageSize)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	page := Paginate(records, 99, 6)
	require.Empty(t, page.Items)
	require.Equal(t, len(records), page.Total)

	page = Paginate(records, 0, 0)
	require.Equal(t, 1, page.PageNumber)
	require.Equal(t, 1, page.PageSize)
}
