package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
	"github.com/arcuspath/backend/services"
)

func moderationApp(seed []model.Provider) *fiber.App {
	repo := repository.NewMemoryProviderRepo(seed)
	h := NewModerationHandlers(services.NewModerationService(repo, zerolog.Nop()))

	app := fiber.New()
	app.Post("/api/admin/providers/:id/approve", h.Approve())
	app.Post("/api/admin/providers/:id/activate", h.Activate())
	app.Post("/api/admin/providers/:id/suspend", h.Suspend())
	app.Post("/api/admin/providers/:id/reinstate", h.Reinstate())
	return app
}

func postStatus(t *testing.T, app *fiber.App, path string) (*http.Response, model.Provider) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil))
	require.NoError(t, err)

	var p model.Provider
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	}
	resp.Body.Close()
	return resp, p
}

func TestReinstateEndpoint(t *testing.T) {
	app := moderationApp([]model.Provider{
		{ID: "p-1", Name: "Suspended Co", Status: model.StatusSuspended},
		{ID: "p-2", Name: "Draft Co", Status: model.StatusDraft},
	})

	resp, p := postStatus(t, app, "/api/admin/providers/p-1/reinstate")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusActive, p.Status)

	resp, _ = postStatus(t, app, "/api/admin/providers/p-2/reinstate")
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "drafts cannot be reinstated")

	resp, _ = postStatus(t, app, "/api/admin/providers/nope/reinstate")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestModerationStatusEndpoints(t *testing.T) {
	app := moderationApp([]model.Provider{
		{ID: "p-1", Name: "Applicant", Status: model.StatusPendingReview},
	})

	resp, p := postStatus(t, app, "/api/admin/providers/p-1/approve")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusApproved, p.Status)

	resp, p = postStatus(t, app, "/api/admin/providers/p-1/activate")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusActive, p.Status)

	resp, p = postStatus(t, app, "/api/admin/providers/p-1/suspend")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusSuspended, p.Status)

	resp, _ = postStatus(t, app, "/api/admin/providers/p-1/approve")
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "suspended listings go back through reinstate only")
}
