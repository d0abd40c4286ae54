package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/internal/search"
	"github.com/arcuspath/backend/model"
)

func searchApp(seed []model.Provider) *fiber.App {
	repo := repository.NewMemoryProviderRepo(seed)
	h := NewSearchHandlers(search.NewService(repo), repo)

	app := fiber.New()
	app.Get("/api/providers", h.SearchProviders)
	app.Get("/api/providers/browse", h.BrowseByBadges)
	app.Get("/api/providers/:id", h.GetProvider)
	return app
}

func handlerSeed() []model.Provider {
	day := func(d int) time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}
	return []model.Provider{
		{
			ID: "p-1", Name: "Rainbow Health", CategoryID: "healthcare",
			Status: model.StatusActive, CreatedAt: day(0),
			Trust: model.TrustProfile{
				Verification: model.Verification{Level: model.VerificationArcus},
				Badges:       []model.TrustBadge{model.BadgeVerified, model.BadgeAffirming},
			},
		},
		{
			ID: "p-2", Name: "Open Door Legal", CategoryID: "legal",
			Status: model.StatusActive, CreatedAt: day(1),
			Trust: model.TrustProfile{
				Verification: model.Verification{Level: model.VerificationSelf},
				Badges:       []model.TrustBadge{model.BadgeAffirming},
			},
		},
		{
			ID: "p-3", Name: "Hidden Draft", CategoryID: "legal",
			OwnerUserID: "owner-3", Status: model.StatusDraft, CreatedAt: day(2),
		},
	}
}

func doSearch(t *testing.T, app *fiber.App, path string) dto.SearchResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSearchEndpoint(t *testing.T) {
	app := searchApp(handlerSeed())

	out := doSearch(t, app, "/api/providers")
	assert.Equal(t, 2, out.Total, "drafts are invisible")
	require.Len(t, out.Providers, 2)
	assert.Equal(t, "p-1", out.Providers[0].ID, "higher trust ranks first")

	out = doSearch(t, app, "/api/providers?category=legal")
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "p-2", out.Providers[0].ID)

	out = doSearch(t, app, "/api/providers?page=abc&pageSize=-5")
	assert.Equal(t, 1, out.Page, "malformed paging falls back to defaults")
	assert.Equal(t, 20, out.PageSize)
}

func TestSearchEndpointBadgeSemantics(t *testing.T) {
	app := searchApp(handlerSeed())

	// combined search requires every badge
	out := doSearch(t, app, "/api/providers?badges=verified,affirming")
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "p-1", out.Providers[0].ID)

	// browse matches any badge and ignores other filters
	out = doSearch(t, app, "/api/providers/browse?badges=verified,affirming&category=healthcare")
	assert.Equal(t, 2, out.Total)
}

func TestGetProviderVisibility(t *testing.T) {
	app := searchApp(handlerSeed())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/providers/p-1", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/providers/p-3", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "drafts look nonexistent to anonymous callers")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/providers/nope", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProviderOwnerSeesOwnDraft(t *testing.T) {
	repo := repository.NewMemoryProviderRepo(handlerSeed())
	h := NewSearchHandlers(search.NewService(repo), repo)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "owner-3")
		c.Locals("role", string(model.RoleMember))
		return c.Next()
	})
	app.Get("/api/providers/:id", h.GetProvider)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/providers/p-3", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
