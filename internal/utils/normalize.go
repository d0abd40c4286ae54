package utils

import (
	"strings"
)

// DedupeTrimmed trims every entry, drops empties and case-insensitive
// duplicates, and preserves first-seen order. Used for the free-form list
// fields of a listing (specialties, languages) before they are stored.
func DedupeTrimmed(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
