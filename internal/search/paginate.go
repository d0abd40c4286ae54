package search

import (
	"github.com/arcuspath/backend/model"
)

const DefaultPageSize = 20

type Page struct {
	Items    []model.Provider
	Page     int
	PageSize int
	Total    int
	HasMore  bool
}

// Paginate slices an ordered list into a 1-indexed page. Pages below 1 clamp
// to 1, a non-positive pageSize falls back to the default, and a page past
// the end comes back with empty items rather than an error. Total always
// reflects the full pre-slice length.
func Paginate(ordered []model.Provider, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(ordered)

	// compare via division so huge page/pageSize values from the query
	// string cannot overflow (page-1)*pageSize
	if page-1 > total/pageSize {
		return Page{
			Items:    []model.Provider{},
			Page:     page,
			PageSize: pageSize,
			Total:    total,
			HasMore:  false,
		}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]model.Provider, end-start)
	copy(items, ordered[start:end])

	return Page{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  end < total,
	}
}
