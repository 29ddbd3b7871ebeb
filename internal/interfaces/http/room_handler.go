package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
	"github.com/jhoicas/portaria-api/internal/domain"
)

// RoomHandler maneja el CRUD de salas de la empresa autenticada.
type RoomHandler struct {
	uc *usecase.RoomUseCase
}

// NewRoomHandler construye el handler de salas.
func NewRoomHandler(uc *usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sala
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRoomRequest  true  "datos de la sala"
// @Success      201   {object}  dto.RoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Floor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y floor son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in, GetCompanyID(c))
	if err != nil {
		return roomError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar salas
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.RoomListResponse
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obtener sala por ID
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la sala"
// @Success      200  {object}  dto.RoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return roomError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sala no existe"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sala
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la sala"
// @Param        body  body  dto.UpdateRoomRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.RoomResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [put]
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetCompanyID(c), in)
	if err != nil {
		return roomError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sala
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la sala"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetCompanyID(c)); err != nil {
		return roomError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func roomError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sala no existe"})
	}
	if errors.Is(err, domain.ErrQuotaExceeded) {
		return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "QUOTA_EXCEEDED", Message: "límite de salas del plan alcanzado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return internalError(c, err)
}
