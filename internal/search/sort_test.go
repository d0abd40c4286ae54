package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/model"
)

func sortFixture() []model.Provider {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []model.Provider{
		{ID: "p1", Name: "zenith Wellness", Rating: 4.0, CreatedAt: base.AddDate(0, 0, 3), Status: model.StatusActive,
			Trust: model.TrustProfile{Verification: model.Verification{Level: model.VerificationSelf}}},
		{ID: "p2", Name: "Apex Legal", Rating: 4.5, CreatedAt: base.AddDate(0, 0, 1), Status: model.StatusActive,
			Trust: model.TrustProfile{Verification: model.Verification{Level: model.VerificationArcus}}},
		{ID: "p3", Name: "apex legal east", CreatedAt: base.AddDate(0, 0, 2), Status: model.StatusActive,
			Trust: model.TrustProfile{Verification: model.Verification{Level: model.VerificationCred}}},
		{ID: "p4", Name: "Beacon Finance", Rating: 4.5, CreatedAt: base.AddDate(0, 0, 1), Status: model.StatusActive,
			Trust: model.TrustProfile{Verification: model.Verification{Level: model.VerificationCred}, CommunityEndorsements: 3}},
	}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortRating, ParseSortOption("rating"))
	assert.Equal(t, SortNewest, ParseSortOption(" NEWEST "))
	assert.Equal(t, SortAlphabetical, ParseSortOption("alphabetical"))
	assert.Equal(t, SortTrust, ParseSortOption(""))
	assert.Equal(t, SortTrust, ParseSortOption("bogus"))
}

func TestSortRating(t *testing.T) {
	got := Sort(sortFixture(), SortRating)
	// 4.5 pair tie-broken by id, missing rating treated as 0 and last
	assert.Equal(t, []string{"p2", "p4", "p1", "p3"}, ids(got))
	for i := 0; i+1 < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Rating, got[i+1].Rating)
	}
}

func TestSortNewest(t *testing.T) {
	got := Sort(sortFixture(), SortNewest)
	assert.Equal(t, []string{"p1", "p3", "p2", "p4"}, ids(got))
}

func TestSortAlphabetical(t *testing.T) {
	got := Sort(sortFixture(), SortAlphabetical)
	// case-insensitive: both apex entries precede Beacon and zenith
	assert.Equal(t, []string{"p2", "p3", "p4", "p1"}, ids(got))
}

func TestSortTrustDefault(t *testing.T) {
	got := Sort(sortFixture(), SortTrust)
	// arcus first; the two credential-level providers split on vouch count
	assert.Equal(t, []string{"p2", "p4", "p3", "p1"}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sortFixture()
	before := ids(in)
	_ = Sort(in, SortAlphabetical)
	require.Equal(t, before, ids(in))
}

func TestSortStability(t *testing.T) {
	// same rating and adjacent ids: order must be reproducible across runs
	a := Sort(sortFixture(), SortRating)
	b := Sort(sortFixture(), SortRating)
	assert.Equal(t, ids(a), ids(b))
}
