package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/arcuspath/backend/model"
)

// Params is everything a search request can carry on the query string.
type Params struct {
	Filters  Filters
	Sort     SortOption
	Page     int
	PageSize int
}

// ParseParams builds search parameters from raw URL query values. This is
// the explicit parse-and-validate step: unknown badge, tag or level values
// are dropped, malformed ints fall back to defaults, and nothing here ever
// returns an error; a bad query string just means fewer filters.
func ParseParams(values url.Values) Params {
	p := Params{
		Filters: Filters{
			Query:       values.Get("q"),
			Category:    values.Get("category"),
			Subcategory: values.Get("subcategory"),
			Location:    values.Get("location"),
			Virtual:     values.Get("virtual") == "true",
			LGBTQOwned:  values.Get("lgbtqOwned") == "true",
			Badges:      parseBadges(values.Get("badges")),
			BadgeMode:   MatchAllBadges,
		},
		Sort:     ParseSortOption(values.Get("sort")),
		Page:     parseIntDefault(values.Get("page"), 1),
		PageSize: parseIntDefault(values.Get("pageSize"), DefaultPageSize),
	}
	p.Filters.InclusiveTags = parseTags(values.Get("tags"))
	if lvl := model.VerificationLevel(values.Get("verificationLevel")); lvl.Valid() {
		p.Filters.VerificationLevel = lvl
	}
	return p
}

func parseBadges(csv string) []model.TrustBadge {
	var out []model.TrustBadge
	for _, part := range splitCSV(csv) {
		if b := model.TrustBadge(part); b.Valid() {
			out = append(out, b)
		}
	}
	return out
}

func parseTags(csv string) []model.InclusiveTag {
	var out []model.InclusiveTag
	for _, part := range splitCSV(csv) {
		if t := model.InclusiveTag(part); t.Valid() {
			out = append(out, t)
		}
	}
	return out
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
