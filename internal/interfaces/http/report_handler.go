package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de visitas por sala.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// VisitReport godoc
// @Summary      Reporte de visitas por sala (hoy / 7 días / 30 días)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.VisitReportResponse
// @Router       /api/reports/visits [get]
func (h *ReportHandler) VisitReport(c *fiber.Ctx) error {
	out, err := h.uc.VisitReport(c.Context(), GetCompanyID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
