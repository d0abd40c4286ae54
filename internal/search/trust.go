package search

import (
	"github.com/arcuspath/backend/model"
)

// TrustRank is the comparable ranking key behind the default sort. It is a
// pure function of the provider snapshot: no clock, no external state, so
// repeated queries over the same dataset rank identically.
type TrustRank struct {
	Score        int
	Endorsements int
	BadgeCount   int
	OwnedBonus   int
	ID           string
}

func RankProvider(p model.Provider) TrustRank {
	owned := 0
	if p.Trust.LGBTQOwned {
		owned = 1
	}
	return TrustRank{
		Score:        p.Trust.Verification.Level.TrustScore(),
		Endorsements: p.Trust.CommunityEndorsements,
		BadgeCount:   len(p.Trust.Badges),
		OwnedBonus:   owned,
		ID:           p.ID,
	}
}

// Less orders ranks from most to least trusted. Score, then vouch count,
// then badge count, then community ownership; id ascending settles the rest
// so the ordering is reproducible.
func (r TrustRank) Less(other TrustRank) bool {
	if r.Score != other.Score {
		return r.Score > other.Score
	}
	if r.Endorsements != other.Endorsements {
		return r.Endorsements > other.Endorsements
	}
	if r.BadgeCount != other.BadgeCount {
		return r.BadgeCount > other.BadgeCount
	}
	if r.OwnedBonus != other.OwnedBonus {
		return r.OwnedBonus > other.OwnedBonus
	}
	return r.ID < other.ID
}
