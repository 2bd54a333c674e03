package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/application/usecase"
	"github.com/compcleared/compcleared-api/internal/domain"
)

// TrainingHandler maneja los registros de capacitación.
type TrainingHandler struct {
	uc *usecase.TrainingUseCase
}

// NewTrainingHandler construye el handler de capacitaciones.
func NewTrainingHandler(uc *usecase.TrainingUseCase) *TrainingHandler {
	return &TrainingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar capacitación completada
// @Tags         training
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrainingRequest  true  "employee_name, training_date, training_type"
// @Success      201   {object}  dto.CreateTrainingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/training [post]
func (h *TrainingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrainingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", ve.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not create training record"))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar capacitaciones de la empresa
// @Tags         training
// @Produce      json
// @Success      200  {object}  dto.TrainingListResponse
// @Failure      402  {object}  dto.ErrorResponse
// @Router       /api/training [get]
func (h *TrainingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not list training records"))
	}
	return c.JSON(out)
}
