package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/internal/authctx"
	"github.com/arcuspath/backend/services"
)

type VouchHandlers struct {
	Vouches *services.VouchService
}

func NewVouchHandlers(vouches *services.VouchService) *VouchHandlers {
	return &VouchHandlers{Vouches: vouches}
}

// CreateVouch godoc
// @Summary      Vouch for a provider
// @Description  One vouch per member per provider; no self-vouching.
// @Tags         vouches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true   "Provider id"
// @Param        data  body      dto.VouchRequest  false  "Optional note"
// @Success      201   {object}  model.Vouch
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/providers/{id}/vouches [post]
func (h *VouchHandlers) CreateVouch(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var body dto.VouchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
	}

	v, err := h.Vouches.Vouch(c.Context(), uid, c.Params("id"), body.Note)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// RetractVouch godoc
// @Summary      Retract a vouch
// @Tags         vouches
// @Security     BearerAuth
// @Param        id  path  string  true  "Provider id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/providers/{id}/vouches [delete]
func (h *VouchHandlers) RetractVouch(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if err := h.Vouches.Retract(c.Context(), uid, c.Params("id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
