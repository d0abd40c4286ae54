package handlers

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/internal/metrics"
	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/internal/search"
	"github.com/arcuspath/backend/model"
)

type SearchHandlers struct {
	Search    *search.Service
	Providers repository.ProviderRepository
}

func NewSearchHandlers(svc *search.Service, providers repository.ProviderRepository) *SearchHandlers {
	return &SearchHandlers{Search: svc, Providers: providers}
}

// queryValues decodes the raw query string; a malformed one just yields
// empty values, which the parser treats as "no filters".
func queryValues(c *fiber.Ctx) url.Values {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return values
}

// SearchProviders godoc
// @Summary      Search the provider directory
// @Description  Combined filter search over active providers with trust-ranked default ordering. Multi-badge filters require every requested badge.
// @Tags         providers
// @Produce      json
// @Param        q                  query  string  false  "Free-text query"
// @Param        category           query  string  false  "Category id"
// @Param        subcategory        query  string  false  "Subcategory"
// @Param        location           query  string  false  "City or state substring"
// @Param        virtual            query  bool    false  "Only virtual providers when true"
// @Param        badges             query  string  false  "Comma-separated badge ids (all must match)"
// @Param        tags               query  string  false  "Comma-separated inclusive tag ids"
// @Param        verificationLevel  query  string  false  "Exact verification level"
// @Param        lgbtqOwned         query  bool    false  "Only LGBTQ-owned when true"
// @Param        sort               query  string  false  "trust | rating | newest | alphabetical"
// @Param        page               query  int     false  "1-indexed page"
// @Param        pageSize           query  int     false  "Page size, default 20"
// @Success      200  {object}  dto.SearchResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/providers [get]
func (h *SearchHandlers) SearchProviders(c *fiber.Ctx) error {
	params := search.ParseParams(queryValues(c))
	return h.run(c, params)
}

// BrowseByBadges godoc
// @Summary      Browse providers by badge
// @Description  Simple badge browsing: providers holding any of the requested badges.
// @Tags         providers
// @Produce      json
// @Param        badges    query  string  false  "Comma-separated badge ids (any may match)"
// @Param        sort      query  string  false  "trust | rating | newest | alphabetical"
// @Param        page      query  int     false  "1-indexed page"
// @Param        pageSize  query  int     false  "Page size, default 20"
// @Success      200  {object}  dto.SearchResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/providers/browse [get]
func (h *SearchHandlers) BrowseByBadges(c *fiber.Ctx) error {
	params := search.ParseParams(queryValues(c))
	// browse surface keeps only the badge filter, with any-match semantics
	params.Filters = search.Filters{
		Badges:    params.Filters.Badges,
		BadgeMode: search.MatchAnyBadge,
	}
	return h.run(c, params)
}

func (h *SearchHandlers) run(c *fiber.Ctx, params search.Params) error {
	start := time.Now()
	res, err := h.Search.SearchProviders(c.Context(), params.Filters, params.Sort, params.Page, params.PageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "search unavailable"})
	}

	metrics.SearchesTotal.WithLabelValues(string(params.Sort)).Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResults.Observe(float64(res.Total))

	return c.JSON(dto.SearchResponse{
		Providers: res.Providers,
		Total:     res.Total,
		Page:      res.Page,
		PageSize:  res.PageSize,
		HasMore:   res.HasMore,
	})
}

// GetProvider godoc
// @Summary      Get a provider profile
// @Tags         providers
// @Produce      json
// @Param        id  path  string  true  "Provider id"
// @Success      200  {object}  model.Provider
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/providers/{id} [get]
func (h *SearchHandlers) GetProvider(c *fiber.Ctx) error {
	p, err := h.Providers.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "provider not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: err.Error()})
	}
	// non-active listings are only visible to their owner and admins
	if p.Status != model.StatusActive && !canSeeHidden(c, p) {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Message: "provider not found"})
	}
	return c.JSON(p)
}

func canSeeHidden(c *fiber.Ctx, p *model.Provider) bool {
	uid, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return role == string(model.RoleAdmin) || (uid != "" && uid == p.OwnerUserID)
}
