package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/dto"
	"github.com/arcuspath/backend/internal/authctx"
	"github.com/arcuspath/backend/model"
	"github.com/arcuspath/backend/services"
)

type ApplicationHandlers struct {
	Applications *services.ApplicationService
}

func NewApplicationHandlers(apps *services.ApplicationService) *ApplicationHandlers {
	return &ApplicationHandlers{Applications: apps}
}

func draftFromDTO(body dto.ProviderDraftDTO) services.ProviderDraft {
	return services.ProviderDraft{
		Name:            body.Name,
		BusinessName:    body.BusinessName,
		CategoryID:      body.CategoryID,
		Subcategory:     body.Subcategory,
		Description:     body.Description,
		ShortBio:        body.ShortBio,
		Specialties:     body.Specialties,
		Languages:       body.Languages,
		Pronouns:        body.Pronouns,
		YearEstablished: body.YearEstablished,
		Location:        body.Location,
		LGBTQOwned:      body.LGBTQOwned,
		Affirmation:     body.Affirmation,
	}
}

// CreateApplication godoc
// @Summary      Start a provider application
// @Description  Creates a draft listing owned by the caller.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.ProviderDraftDTO  true  "Draft payload"
// @Success      201   {object}  model.Provider
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandlers) CreateApplication(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var body dto.ProviderDraftDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	p, err := h.Applications.CreateDraft(c.Context(), uid, draftFromDTO(body))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdateApplication godoc
// @Summary      Edit a draft listing
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Provider id"
// @Param        data  body      dto.ProviderDraftDTO  true  "Draft payload"
// @Success      200   {object}  model.Provider
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/applications/{id} [patch]
func (h *ApplicationHandlers) UpdateApplication(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var body dto.ProviderDraftDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	p, err := h.Applications.UpdateDraft(c.Context(), uid, c.Params("id"), draftFromDTO(body))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(p)
}

// SubmitApplication godoc
// @Summary      Submit a draft for review
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Provider id"
// @Success      200  {object}  model.Provider
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/submit [post]
func (h *ApplicationHandlers) SubmitApplication(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	p, err := h.Applications.Submit(c.Context(), uid, c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(p)
}

// ListOwnApplications godoc
// @Summary      List the caller's own listings
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.Provider
// @Router       /api/applications [get]
func (h *ApplicationHandlers) ListOwnApplications(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	items, err := h.Applications.ListOwn(c.Context(), uid)
	if err != nil {
		return writeServiceError(c, err)
	}
	if items == nil {
		items = []model.Provider{}
	}
	return c.JSON(items)
}

// writeServiceError maps the service sentinels onto HTTP statuses.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrBadgeRequiresCred),
		errors.Is(err, services.ErrSelfVouch),
		errors.Is(err, services.ErrSelfReferral):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrCodeAlreadyUsed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal error"})
	}
}
