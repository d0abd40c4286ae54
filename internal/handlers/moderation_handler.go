package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/model"
	"github.com/arcuspath/backend/services"
)

type ModerationHandlers struct {
	Moderation *services.ModerationService
}

func NewModerationHandlers(mod *services.ModerationService) *ModerationHandlers {
	return &ModerationHandlers{Moderation: mod}
}

// Queue godoc
// @Summary      List providers awaiting review
// @Description  Oldest submissions first, keyset-cursor paginated.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int     false  "Max items, default 20, cap 100"
// @Param        cursor  query  string  false  "Opaque cursor from a previous page"
// @Success      200  {object}  dto.QueueResponse
// @Router       /api/admin/queue [get]
func (h *ModerationHandlers) Queue(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	items, next, err := h.Moderation.Queue(c.Context(), limit, c.Query("cursor"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if items == nil {
		items = []model.Provider{}
	}
	return c.JSON(dto.QueueResponse{Items: items, NextCursor: next})
}

func (h *ModerationHandlers) setStatus(to model.ProviderStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := h.Moderation.SetStatus(c.Context(), c.Params("id"), to)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// Approve moves pending_review -> approved.
func (h *ModerationHandlers) Approve() fiber.Handler { return h.setStatus(model.StatusApproved) }

// Activate moves approved -> active.
func (h *ModerationHandlers) Activate() fiber.Handler { return h.setStatus(model.StatusActive) }

// Suspend pulls a listing from public search.
func (h *ModerationHandlers) Suspend() fiber.Handler { return h.setStatus(model.StatusSuspended) }

// Reinstate returns a suspended listing to active.
func (h *ModerationHandlers) Reinstate() fiber.Handler { return h.setStatus(model.StatusActive) }

// AwardBadge godoc
// @Summary      Award a trust badge
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Provider id"
// @Param        data  body      dto.BadgeRequest  true  "Badge id"
// @Success      200   {object}  model.Provider
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/providers/{id}/badges [post]
func (h *ModerationHandlers) AwardBadge(c *fiber.Ctx) error {
	var body dto.BadgeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	p, err := h.Moderation.AwardBadge(c.Context(), c.Params("id"), model.TrustBadge(body.Badge))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(p)
}

// RevokeBadge godoc
// @Summary      Revoke a trust badge
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string  true  "Provider id"
// @Param        badge  path  string  true  "Badge id"
// @Success      200  {object}  model.Provider
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/providers/{id}/badges/{badge} [delete]
func (h *ModerationHandlers) RevokeBadge(c *fiber.Ctx) error {
	p, err := h.Moderation.RevokeBadge(c.Context(), c.Params("id"), model.TrustBadge(c.Params("badge")))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(p)
}

// SetVerification godoc
// @Summary      Record a verification review outcome
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Provider id"
// @Param        data  body      dto.VerificationRequest  true  "Level and method"
// @Success      200   {object}  model.Provider
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/providers/{id}/verification [post]
func (h *ModerationHandlers) SetVerification(c *fiber.Ctx) error {
	var body dto.VerificationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	p, err := h.Moderation.SetVerification(c.Context(), c.Params("id"), model.VerificationLevel(body.Level), body.Method)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(p)
}
