package search

import (
	"strings"

	"github.com/arcuspath/backend/model"
)

// BadgeMatchMode selects how a multi-badge filter is interpreted. The
// combined search path requires every requested badge (superset match); the
// simple badge-browse surface matches providers holding any of them. Both
// behaviors are deliberate and chosen per call site.
type BadgeMatchMode int

const (
	MatchAllBadges BadgeMatchMode = iota
	MatchAnyBadge
)

// Filters is the conjunction of optional predicates applied to the provider
// set. A zero-value field means "don't care": false booleans and empty
// strings/slices never filter anything out.
type Filters struct {
	Query             string
	Category          string
	Subcategory       string
	Location          string
	Virtual           bool
	Badges            []model.TrustBadge
	BadgeMode         BadgeMatchMode
	InclusiveTags     []model.InclusiveTag
	VerificationLevel model.VerificationLevel
	LGBTQOwned        bool
}

// Apply reduces providers to those matching every set predicate. Only
// status=active providers are ever candidates. The input slice is not
// modified.
func Apply(providers []model.Provider, f Filters) []model.Provider {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]model.Provider, 0, len(providers))
	for _, p := range providers {
		if p.Status != model.StatusActive {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Category != "" && p.CategoryID != f.Category {
			continue
		}
		if f.Subcategory != "" && p.Subcategory != f.Subcategory {
			continue
		}
		if location != "" && !matchesLocation(p, location) {
			continue
		}
		if f.Virtual && !p.Location.Virtual {
			continue
		}
		if len(f.Badges) > 0 && !matchesBadges(p, f.Badges, f.BadgeMode) {
			continue
		}
		if len(f.InclusiveTags) > 0 && !hasAllTags(p, f.InclusiveTags) {
			continue
		}
		if f.VerificationLevel != "" && p.Trust.Verification.Level != f.VerificationLevel {
			continue
		}
		if f.LGBTQOwned && !p.Trust.LGBTQOwned {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesQuery does a case-insensitive substring match over name, business
// name, description and every specialty entry. q must already be lowercased.
func matchesQuery(p model.Provider, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.BusinessName), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, s := range p.Specialties {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func matchesLocation(p model.Provider, loc string) bool {
	return strings.Contains(strings.ToLower(p.Location.City), loc) ||
		strings.Contains(strings.ToLower(p.Location.State), loc)
}

func matchesBadges(p model.Provider, badges []model.TrustBadge, mode BadgeMatchMode) bool {
	if mode == MatchAnyBadge {
		for _, b := range badges {
			if p.Trust.HasBadge(b) {
				return true
			}
		}
		return false
	}
	for _, b := range badges {
		if !p.Trust.HasBadge(b) {
			return false
		}
	}
	return true
}

func hasAllTags(p model.Provider, tags []model.InclusiveTag) bool {
	for _, t := range tags {
		if !p.Trust.HasTag(t) {
			return false
		}
	}
	return true
}
