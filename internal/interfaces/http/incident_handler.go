package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/application/usecase"
	"github.com/compcleared/compcleared-api/internal/domain"
)

// IncidentHandler maneja el violent incident log.
type IncidentHandler struct {
	uc *usecase.IncidentUseCase
}

// NewIncidentHandler construye el handler de incidentes.
func NewIncidentHandler(uc *usecase.IncidentUseCase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar incidente
// @Tags         incidents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "datos del incidente"
// @Success      201   {object}  dto.CreateIncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/incidents [post]
func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", ve.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not log incident"))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar incidentes de la empresa
// @Tags         incidents
// @Produce      json
// @Success      200  {object}  dto.IncidentListResponse
// @Failure      402  {object}  dto.ErrorResponse
// @Router       /api/incidents [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not list incidents"))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener incidente por id
// @Tags         incidents
// @Produce      json
// @Param        id  path  string  true  "incident id"
// @Success      200  {object}  dto.IncidentDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [get]
func (h *IncidentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "incident not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not load incident"))
	}
	return c.JSON(out)
}
