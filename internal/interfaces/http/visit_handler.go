package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/application/visit"
	"github.com/jhoicas/portaria-api/internal/domain"
)

// VisitHandler maneja el ciclo de vida de las visitas: registro del agregado,
// checkout, cancelación, lecturas y el crachá imprimible.
type VisitHandler struct {
	uc  *visit.VisitUseCase
	pdf *visit.BadgePDFUseCase
}

// NewVisitHandler construye el handler de visitas.
func NewVisitHandler(uc *visit.VisitUseCase, pdf *visit.BadgePDFUseCase) *VisitHandler {
	return &VisitHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Registrar visita (visita + acompañantes + crachá)
// @Tags         visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVisitRequest  true  "datos de la visita"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.VisitorID == "" || in.RoomID == "" || in.Responsible == "" || in.BadgeCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "visitor_id, room_id, responsible y badge_code son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in, GetCompanyID(c))
	if err != nil {
		return visitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar visitas
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.VisitListResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar visitas activas
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.VisitResponse
// @Router       /api/visits/active [get]
func (h *VisitHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context(), GetCompanyID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener visita por ID con sus relaciones
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [get]
func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return visitError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Checkout de visita (status=completed, crachá desactivado)
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la visita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/checkout [post]
func (h *VisitHandler) Checkout(c *fiber.Ctx) error {
	if err := h.uc.Checkout(c.Context(), c.Params("id"), GetCompanyID(c)); err != nil {
		return visitError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar visita activa
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la visita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/cancel [post]
func (h *VisitHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id"), GetCompanyID(c)); err != nil {
		return visitError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SuggestBadgeCode godoc
// @Summary      Sugerir código de crachá para el formulario
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BadgeCodeResponse
// @Router       /api/visits/badge-code [get]
func (h *VisitHandler) SuggestBadgeCode(c *fiber.Ctx) error {
	return c.JSON(dto.BadgeCodeResponse{Code: visit.GenerateBadgeCode()})
}

// BadgePDF godoc
// @Summary      Crachá de la visita en PDF
// @Tags         visits
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la visita"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id}/badge.pdf [get]
func (h *VisitHandler) BadgePDF(c *fiber.Ctx) error {
	data, err := h.pdf.Generate(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return visitError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="badge.pdf"`)
	return c.Send(data)
}

func visitError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la visita, el visitante o la sala no existen"})
	}
	if errors.Is(err, domain.ErrVisitNotActive) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VISIT_NOT_ACTIVE", Message: "la visita ya fue cerrada o cancelada"})
	}
	if errors.Is(err, domain.ErrTenantMismatch) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el recurso pertenece a otra empresa"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de crachá ya está en uso"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return internalError(c, err)
}
