package search

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/bootstrap"
	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

func newSeededService(t *testing.T, extra ...model.Provider) *Service {
	t.Helper()
	seed := append(bootstrap.SampleProviders(), extra...)
	return NewService(repository.NewMemoryProviderRepo(seed))
}

func TestSearchNoFiltersReturnsAllActiveByTrust(t *testing.T) {
	svc := newSeededService(t)

	res, err := svc.SearchProviders(context.Background(), Filters{}, SortTrust, 1, 100)
	require.NoError(t, err)

	assert.Equal(t, 16, res.Total)
	assert.Len(t, res.Providers, 16)
	assert.False(t, res.HasMore)

	for i := 0; i+1 < len(res.Providers); i++ {
		a, b := RankProvider(res.Providers[i]), RankProvider(res.Providers[i+1])
		assert.True(t, a.Less(b) || a == b, "results must be trust-descending")
	}
}

func TestSearchCategoryHealthcare(t *testing.T) {
	svc := newSeededService(t)

	res, err := svc.SearchProviders(context.Background(), Filters{Category: "healthcare"}, SortTrust, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	for _, p := range res.Providers {
		assert.Equal(t, "healthcare", p.CategoryID)
	}
}

func TestSearchNoMatches(t *testing.T) {
	svc := newSeededService(t)

	res, err := svc.SearchProviders(context.Background(), Filters{Query: "xyznonexistent12345"}, SortTrust, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Providers)
	assert.False(t, res.HasMore)
}

func TestSearchStatusBaseline(t *testing.T) {
	hidden := []model.Provider{
		{ID: "prov-900", Name: "Draft Co", CategoryID: "legal", Status: model.StatusDraft},
		{ID: "prov-901", Name: "Pending Co", CategoryID: "legal", Status: model.StatusPendingReview},
		{ID: "prov-902", Name: "Suspended Co", CategoryID: "legal", Status: model.StatusSuspended},
	}
	svc := newSeededService(t, hidden...)

	res, err := svc.SearchProviders(context.Background(), Filters{}, SortTrust, 1, 100)
	require.NoError(t, err)

	assert.Equal(t, 16, res.Total)
	for _, p := range res.Providers {
		assert.Equal(t, model.StatusActive, p.Status)
	}
}

func TestSearchIdempotent(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	first, err := svc.SearchProviders(ctx, Filters{Category: "healthcare"}, SortRating, 1, 10)
	require.NoError(t, err)
	second, err := svc.SearchProviders(ctx, Filters{Category: "healthcare"}, SortRating, 1, 10)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "unchanged dataset must yield byte-identical results")
}

func TestSearchTotalInvariantAcrossPages(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	for _, pageSize := range []int{3, 5, 7, 16, 100} {
		for page := 1; page <= 4; page++ {
			res, err := svc.SearchProviders(ctx, Filters{}, SortTrust, page, pageSize)
			require.NoError(t, err)
			assert.Equal(t, 16, res.Total)
		}
	}
}

func TestSearchPaginationDisjointAndComplete(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	full, err := svc.SearchProviders(ctx, Filters{}, SortTrust, 1, 100)
	require.NoError(t, err)
	require.False(t, full.HasMore)

	seen := map[string]bool{}
	var concatenated []string
	for page := 1; ; page++ {
		res, err := svc.SearchProviders(ctx, Filters{}, SortTrust, page, 5)
		require.NoError(t, err)
		for _, p := range res.Providers {
			assert.False(t, seen[p.ID], "provider %s appeared twice", p.ID)
			seen[p.ID] = true
			concatenated = append(concatenated, p.ID)
		}
		if !res.HasMore {
			break
		}
	}
	assert.Equal(t, ids(full.Providers), concatenated)
}

func TestSearchBadgeSemanticsPerEntryPoint(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()
	both := []model.TrustBadge{model.BadgeVerified, model.BadgeAffirming}

	all, err := svc.SearchProviders(ctx, Filters{Badges: both, BadgeMode: MatchAllBadges}, SortTrust, 1, 100)
	require.NoError(t, err)
	for _, p := range all.Providers {
		assert.True(t, p.Trust.HasBadge(model.BadgeVerified))
		assert.True(t, p.Trust.HasBadge(model.BadgeAffirming))
	}

	anyRes, err := svc.SearchProviders(ctx, Filters{Badges: both, BadgeMode: MatchAnyBadge}, SortTrust, 1, 100)
	require.NoError(t, err)
	assert.Greater(t, anyRes.Total, all.Total, "any-match must be at least as broad as all-match on this dataset")
	for _, p := range anyRes.Providers {
		assert.True(t, p.Trust.HasBadge(model.BadgeVerified) || p.Trust.HasBadge(model.BadgeAffirming))
	}
}
