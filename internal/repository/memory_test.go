package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/model"
)

func pendingSeed(n int) []model.Provider {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.Provider, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Provider{
			ID:        string(rune('a'+i)) + "-provider",
			Status:    model.StatusPendingReview,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestListByStatusPagesWithCursor(t *testing.T) {
	repo := NewMemoryProviderRepo(pendingSeed(7))
	ctx := context.Background()

	var all []string
	cur := ""
	pages := 0
	for {
		items, next, err := repo.ListByStatus(ctx, model.StatusPendingReview, 3, cur)
		require.NoError(t, err)
		for _, p := range items {
			all = append(all, p.ID)
		}
		pages++
		if next == "" {
			break
		}
		cur = next
	}

	assert.Equal(t, 3, pages)
	require.Len(t, all, 7)
	for i := 0; i+1 < len(all); i++ {
		assert.Less(t, all[i], all[i+1], "pages must walk the submission order without repeats")
	}
}

func TestListByStatusIgnoresBadCursor(t *testing.T) {
	repo := NewMemoryProviderRepo(pendingSeed(2))
	items, _, err := repo.ListByStatus(context.Background(), model.StatusPendingReview, 10, "!!garbage!!")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListByStatusClampsLimit(t *testing.T) {
	repo := NewMemoryProviderRepo(pendingSeed(25))
	items, next, err := repo.ListByStatus(context.Background(), model.StatusPendingReview, 0, "")
	require.NoError(t, err)
	assert.Len(t, items, 20)
	assert.NotEmpty(t, next)
}

func TestMemoryProviderRepoCopiesOnRead(t *testing.T) {
	repo := NewMemoryProviderRepo([]model.Provider{
		{ID: "p1", Name: "Original", Status: model.StatusActive},
	})
	ctx := context.Background()

	p, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	p.Name = "Mutated"

	again, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)

	list, err := repo.FindAllActive(ctx)
	require.NoError(t, err)
	list[0].Name = "Mutated"
	again, err = repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}

func TestMemoryProviderRepoUpdateUnknown(t *testing.T) {
	repo := NewMemoryProviderRepo(nil)
	err := repo.Update(context.Background(), &model.Provider{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
