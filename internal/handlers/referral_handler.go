package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/internal/authctx"
	"github.com/arcuspath/backend/services"
)

type ReferralHandlers struct {
	Referrals *services.ReferralService
}

func NewReferralHandlers(referrals *services.ReferralService) *ReferralHandlers {
	return &ReferralHandlers{Referrals: referrals}
}

// GetReferralCode godoc
// @Summary      Get (or mint) the caller's referral code
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.ReferralCode
// @Router       /api/referrals [post]
func (h *ReferralHandlers) GetReferralCode(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	code, err := h.Referrals.GetOrCreateCode(c.Context(), uid)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(code)
}

// ApplyReferral godoc
// @Summary      Redeem a referral code
// @Tags         referrals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.ApplyReferralRequest  true  "Code"
// @Success      201   {object}  model.ReferralUse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/referrals/apply [post]
func (h *ReferralHandlers) ApplyReferral(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var body dto.ApplyReferralRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	use, err := h.Referrals.Apply(c.Context(), uid, body.Code)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(use)
}

// ReferralStats godoc
// @Summary      Referral stats for the caller's code
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.ReferralStats
// @Router       /api/referrals/stats [get]
func (h *ReferralHandlers) ReferralStats(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	stats, err := h.Referrals.Stats(c.Context(), uid)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(stats)
}
