package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/arcuspath/backend/model"
)

type SortOption string

const (
	SortTrust        SortOption = "trust"
	SortRating       SortOption = "rating"
	SortNewest       SortOption = "newest"
	SortAlphabetical SortOption = "alphabetical"
)

// ParseSortOption maps a raw sort value to a known option, falling back to
// the trust default for anything unrecognized.
func ParseSortOption(s string) SortOption {
	switch SortOption(strings.ToLower(strings.TrimSpace(s))) {
	case SortRating:
		return SortRating
	case SortNewest:
		return SortNewest
	case SortAlphabetical:
		return SortAlphabetical
	default:
		return SortTrust
	}
}

// Sort returns a new slice ordered by the given option. The input is never
// mutated, and the sort is stable beyond the defined tie-breaks.
func Sort(providers []model.Provider, opt SortOption) []model.Provider {
	out := make([]model.Provider, len(providers))
	copy(out, providers)

	switch opt {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].ID < out[j].ID
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID < out[j].ID
		})
	case SortAlphabetical:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			if cmp := c.CompareString(out[i].Name, out[j].Name); cmp != 0 {
				return cmp < 0
			}
			return out[i].ID < out[j].ID
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return RankProvider(out[i]).Less(RankProvider(out[j]))
		})
	}
	return out
}
