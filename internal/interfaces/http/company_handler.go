package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
	"github.com/jhoicas/portaria-api/internal/domain"
)

// CompanyHandler maneja la gestión de empresas cliente (área admin) y el
// self-service del perfil de la empresa autenticada.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa cliente
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCompanyRequest  true  "datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/clients [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" || in.ResponsibleName == "" || in.Email == "" || in.Password == "" || in.Plan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name, responsible_name, email, password y plan son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return companyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas cliente
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "búsqueda por nombre, responsable o email"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/admin/clients [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa cliente por ID
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/clients/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return companyError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa no existe"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa cliente
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/clients/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return companyError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa cliente
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/clients/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Estadísticas de suscripciones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SubscriptionStatsResponse
// @Router       /api/admin/stats [get]
func (h *CompanyHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.SubscriptionStats(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil de la empresa autenticada
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/profile [get]
func (h *CompanyHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c))
	if err != nil {
		return companyError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa no existe"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil de la empresa autenticada
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a actualizar (sin plan ni status)"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *CompanyHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return companyError(c, err)
	}
	return c.JSON(out)
}

func companyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrCompanyNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa no existe"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return internalError(c, err)
}
