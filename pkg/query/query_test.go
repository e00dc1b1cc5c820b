package query

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name     string
	Status   string
	Rank     int
	Date     string
	Sequence int
}

func rowDefinition() Definition[row] {
	return Definition[row]{
		Filters: map[string]FilterFunc[row]{
			"name":       Contains(func(r row) string { return r.Name }),
			"status":     Equals(func(r row) string { return r.Status }),
			"textSearch": ContainsAny(func(r row) string { return r.Name }, func(r row) string { return r.Status }),
		},
		Sorters: map[string]CompareFunc[row]{
			"name":   ByString(func(r row) string { return r.Name }),
			"rank":   ByInt(func(r row) int { return r.Rank }),
			"date":   ByDate(func(r row) string { return r.Date }),
			"status": ByString(func(r row) string { return r.Status }),
		},
		Aliases: map[string]string{"label": "name"},
	}
}

func TestFilterCaseInsensitiveContains(t *testing.T) {
	rows := []row{{Name: "Acme Corp"}, {Name: "Globex"}, {Name: "acme east"}}
	res := Run(rows, Request{Page: 1, Limit: 10, Filters: map[string]string{"name": "ACME"}}, rowDefinition())
	require.Len(t, res.Data, 2)
	assert.Equal(t, 2, res.Meta.Total)
}

func TestFilterExactEquality(t *testing.T) {
	rows := []row{{Status: "active"}, {Status: "inactive"}, {Status: "active"}}
	res := Run(rows, Request{Page: 1, Limit: 10, Filters: map[string]string{"status": "active"}}, rowDefinition())
	assert.Len(t, res.Data, 2)

	// substring of an enum value must not match
	res = Run(rows, Request{Page: 1, Limit: 10, Filters: map[string]string{"status": "act"}}, rowDefinition())
	assert.Empty(t, res.Data)
}

func TestEmptyFilterValueSkipped(t *testing.T) {
	rows := []row{{Name: "a"}, {Name: "b"}}
	res := Run(rows, Request{Page: 1, Limit: 10, Filters: map[string]string{"name": ""}}, rowDefinition())
	assert.Len(t, res.Data, 2)
}

func TestUnknownFilterKeyIgnored(t *testing.T) {
	rows := []row{{Name: "a"}, {Name: "b"}}
	res := Run(rows, Request{Page: 1, Limit: 10, Filters: map[string]string{"bogus": "x"}}, rowDefinition())
	assert.Len(t, res.Data, 2)
}

func TestFiltersComposeWithAnd(t *testing.T) {
	rows := []row{
		{Name: "alpha", Status: "active"},
		{Name: "alpha", Status: "inactive"},
		{Name: "beta", Status: "active"},
	}
	res := Run(rows, Request{
		Page: 1, Limit: 10,
		Filters: map[string]string{"name": "alpha", "status": "active"},
	}, rowDefinition())
	require.Len(t, res.Data, 1)
	assert.Equal(t, "alpha", res.Data[0].Name)
	assert.Equal(t, "active", res.Data[0].Status)
}

func TestFilterMonotonicity(t *testing.T) {
	rows := make([]row, 0, 30)
	for i := 0; i < 30; i++ {
		status := "active"
		if i%3 == 0 {
			status = "inactive"
		}
		rows = append(rows, row{Name: fmt.Sprintf("tenant-%d", i%7), Status: status})
	}
	def := rowDefinition()
	one := Run(rows, Request{Page: 1, Limit: 100, Filters: map[string]string{"name": "tenant-1"}}, def)
	two := Run(rows, Request{Page: 1, Limit: 100, Filters: map[string]string{"name": "tenant-1", "status": "active"}}, def)
	assert.LessOrEqual(t, two.Meta.Total, one.Meta.Total)
}

func TestSortAscDesc(t *testing.T) {
	rows := []row{{Rank: 3}, {Rank: 1}, {Rank: 2}}
	def := rowDefinition()

	res := Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "rank", Order: OrderAsc}}, def)
	assert.Equal(t, []int{1, 2, 3}, ranks(res.Data))

	res = Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "rank", Order: OrderDesc}}, def)
	assert.Equal(t, []int{3, 2, 1}, ranks(res.Data))
}

func ranks(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Rank
	}
	return out
}

func TestSortStability(t *testing.T) {
	rows := make([]row, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, row{Status: "same", Sequence: i})
	}
	res := Run(rows, Request{Page: 1, Limit: 20, Sort: &Sort{Field: "status", Order: OrderAsc}}, rowDefinition())
	for i, r := range res.Data {
		assert.Equal(t, i, r.Sequence)
	}
}

func TestSortAlias(t *testing.T) {
	rows := []row{{Name: "b"}, {Name: "a"}}
	res := Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "label", Order: OrderAsc}}, rowDefinition())
	assert.Equal(t, "a", res.Data[0].Name)
}

func TestUnknownSortFieldPreservesOrder(t *testing.T) {
	rows := []row{{Name: "z"}, {Name: "a"}, {Name: "m"}}
	res := Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "nope", Order: OrderAsc}}, rowDefinition())
	assert.Equal(t, "z", res.Data[0].Name)
	assert.Equal(t, "a", res.Data[1].Name)
	assert.Equal(t, "m", res.Data[2].Name)
}

func TestSortMissingDatesLast(t *testing.T) {
	rows := []row{
		{Name: "none"},
		{Name: "mid", Date: "2024-06-01"},
		{Name: "bad", Date: "not-a-date"},
		{Name: "early", Date: "2023-01-01"},
	}
	res := Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "date", Order: OrderAsc}}, rowDefinition())
	require.Len(t, res.Data, 4)
	assert.Equal(t, "early", res.Data[0].Name)
	assert.Equal(t, "mid", res.Data[1].Name)
	// missing and unparsable both sort after valid dates, original order kept
	assert.Equal(t, "none", res.Data[2].Name)
	assert.Equal(t, "bad", res.Data[3].Name)

	res = Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "date", Order: OrderDesc}}, rowDefinition())
	assert.Equal(t, "mid", res.Data[2].Name)
	assert.Equal(t, "early", res.Data[3].Name)
}

func TestPaginationInvariant(t *testing.T) {
	rows := make([]row, 23)
	req := Request{Limit: 5}
	res := Run(rows, Request{Page: 1, Limit: 5}, rowDefinition())
	require.Equal(t, 5, res.Meta.TotalPages)

	seen := 0
	for page := 1; page <= res.Meta.TotalPages; page++ {
		req.Page = page
		pageRes := Run(rows, req, rowDefinition())
		seen += len(pageRes.Data)
	}
	assert.Equal(t, res.Meta.Total, seen)
}

func TestOutOfRangePage(t *testing.T) {
	rows := make([]row, 5)
	res := Run(rows, Request{Page: 999, Limit: 10}, rowDefinition())
	assert.Empty(t, res.Data)
	assert.Equal(t, 5, res.Meta.Total)
	assert.Equal(t, 1, res.Meta.TotalPages)
}

func TestHugeLimit(t *testing.T) {
	// A limit near MaxInt must not overflow the page-count ceiling.
	rows := make([]row, 5)
	res := Run(rows, Request{Page: 1, Limit: math.MaxInt}, rowDefinition())
	assert.Len(t, res.Data, 5)
	assert.Equal(t, 1, res.Meta.TotalPages)
	assert.Equal(t, 5, res.Meta.Total)
}

func TestZeroLimit(t *testing.T) {
	rows := make([]row, 5)
	res := Run(rows, Request{Page: 1, Limit: 0}, rowDefinition())
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Meta.TotalPages)
	assert.Equal(t, 5, res.Meta.Total)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	rows := []row{{Rank: 3}, {Rank: 1}, {Rank: 2}}
	Run(rows, Request{Page: 1, Limit: 10, Sort: &Sort{Field: "rank", Order: OrderAsc}}, rowDefinition())
	assert.Equal(t, []int{3, 1, 2}, ranks(rows))
}
