package dto

import "time"

// CreateVisitorRequest entrada para registrar un visitante.
type CreateVisitorRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Document string  `json:"document" validate:"required,min=1,max=50"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Company  string  `json:"company"`
	Photo    *string `json:"photo"` // data-URI, opcional
}

// UpdateVisitorRequest entrada para editar un visitante (campos opcionales).
type UpdateVisitorRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Document *string `json:"document" validate:"omitempty,min=1,max=50"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Company  *string `json:"company"`
	Photo    *string `json:"photo"`
}

// VisitorResponse salida de un visitante.
type VisitorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Photo     *string   `json:"photo,omitempty"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VisitorListResponse lista paginada de visitantes.
type VisitorListResponse struct {
	Items []VisitorResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
