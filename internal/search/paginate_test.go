package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcuspath/backend/model"
)

func numbered(n int) []model.Provider {
	out := make([]model.Provider, n)
	for i := range out {
		out[i] = model.Provider{ID: fmt.Sprintf("p%02d", i)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantLen   int
		wantPage  int
		wantSize  int
		wantMore  bool
		wantFirst string
	}{
		{"first page", 16, 1, 5, 5, 1, 5, true, "p00"},
		{"middle page", 16, 2, 5, 5, 2, 5, true, "p05"},
		{"last partial page", 16, 4, 5, 1, 4, 5, false, "p15"},
		{"page below one clamps", 16, 0, 5, 5, 1, 5, true, "p00"},
		{"negative page clamps", 16, -3, 5, 5, 1, 5, true, "p00"},
		{"invalid page size defaults", 16, 1, 0, 16, 1, DefaultPageSize, false, "p00"},
		{"beyond last page is empty", 16, 9, 5, 0, 9, 5, false, ""},
		{"page size over total", 16, 1, 100, 16, 1, 100, false, "p00"},
		{"empty input", 0, 1, 20, 0, 1, 20, false, ""},
		{"huge page is empty", 16, 3037000500, 5, 0, 3037000500, 5, false, ""},
		{"huge page size returns everything", 16, 1, 3037000500, 16, 1, 3037000500, false, "p00"},
		{"huge page and size together", 3, 3037000500, 3037000500, 0, 3037000500, 3037000500, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(numbered(tt.total), tt.page, tt.pageSize)
			assert.Len(t, got.Items, tt.wantLen)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.PageSize)
			assert.Equal(t, tt.total, got.Total, "total reflects the full list on every page")
			assert.Equal(t, tt.wantMore, got.HasMore)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, got.Items[0].ID)
			}
		})
	}
}

func TestPaginateTotalInvariantAcrossPages(t *testing.T) {
	list := numbered(17)
	for page := 1; page <= 5; page++ {
		assert.Equal(t, 17, Paginate(list, page, 4).Total)
	}
}

func TestPaginateCoverage(t *testing.T) {
	list := numbered(17)
	var seen []string
	for page := 1; ; page++ {
		pg := Paginate(list, page, 4)
		for _, p := range pg.Items {
			seen = append(seen, p.ID)
		}
		if !pg.HasMore {
			break
		}
	}
	assert.Equal(t, ids(list), seen, "concatenated pages reproduce the full list")
}
