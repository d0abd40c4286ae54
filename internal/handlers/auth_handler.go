package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/services"
)

type AuthHandlers struct {
	Auth *services.AuthService
}

func NewAuthHandlers(auth *services.AuthService) *AuthHandlers {
	return &AuthHandlers{Auth: auth}
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "email and password are required"})
	}

	token, user, err := h.Auth.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, User: user})
}
