package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/application/report"
	"github.com/compcleared/compcleared-api/internal/domain"
)

// ReportHandler descarga de los PDFs de cumplimiento.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// IncidentLog godoc
// @Summary      Descargar el violent incident log en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      402  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/report/pdf [get]
func (h *ReportHandler) IncidentLog(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadIncidentLog(c.Context(), GetCompanyID(c))
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// WrittenPlan godoc
// @Summary      Descargar el Workplace Violence Prevention Plan en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      402  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/report/plan [get]
func (h *ReportHandler) WrittenPlan(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadWrittenPlan(c.Context(), GetCompanyID(c))
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "company not found"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not generate report"))
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
