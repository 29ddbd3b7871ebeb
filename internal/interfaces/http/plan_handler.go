package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
)

// PlanHandler expone los planes de suscripción disponibles.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler de planes.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Listar planes de suscripción
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PlanListResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
