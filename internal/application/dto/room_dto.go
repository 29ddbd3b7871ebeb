package dto

import "time"

// CreateRoomRequest entrada para crear una sala.
type CreateRoomRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Floor       string `json:"floor" validate:"required,min=1,max=50"`
	Description string `json:"description"`
}

// UpdateRoomRequest entrada para editar una sala (campos opcionales).
type UpdateRoomRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Floor       *string `json:"floor" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
}

// RoomResponse salida de una sala.
type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Floor       string    `json:"floor"`
	Description string    `json:"description,omitempty"`
	CompanyID   string    `json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoomListResponse lista paginada de salas.
type RoomListResponse struct {
	Items []RoomResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
