package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
	"github.com/jhoicas/portaria-api/internal/domain"
)

// VisitorHandler maneja el CRUD de visitantes de la empresa autenticada.
type VisitorHandler struct {
	uc *usecase.VisitorUseCase
}

// NewVisitorHandler construye el handler de visitantes.
func NewVisitorHandler(uc *usecase.VisitorUseCase) *VisitorHandler {
	return &VisitorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar visitante
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVisitorRequest  true  "datos del visitante"
// @Success      201   {object}  dto.VisitorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/visitors [post]
func (h *VisitorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Document == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y document son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in, GetCompanyID(c))
	if err != nil {
		return visitorError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar visitantes
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "búsqueda por nombre, documento o email (sin acentos)"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.VisitorListResponse
// @Router       /api/visitors [get]
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), GetCompanyID(c), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener visitante por ID
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del visitante"
// @Success      200  {object}  dto.VisitorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id} [get]
func (h *VisitorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return visitorError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el visitante no existe"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar visitante
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del visitante"
// @Param        body  body  dto.UpdateVisitorRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.VisitorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/visitors/{id} [put]
func (h *VisitorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVisitorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetCompanyID(c), in)
	if err != nil {
		return visitorError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar visitante
// @Tags         visitors
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del visitante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id} [delete]
func (h *VisitorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetCompanyID(c)); err != nil {
		return visitorError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func visitorError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el visitante no existe"})
	}
	if errors.Is(err, domain.ErrQuotaExceeded) {
		return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "QUOTA_EXCEEDED", Message: "límite de visitantes del plan alcanzado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return internalError(c, err)
}
