package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa cliente (área admin).
type CreateCompanyRequest struct {
	CompanyName     string `json:"company_name" validate:"required,min=1,max=200"`
	ResponsibleName string `json:"responsible_name" validate:"required,min=1,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Phone           string `json:"phone"`
	Plan            string `json:"plan" validate:"required,oneof=basic professional enterprise"`
	Status          string `json:"status" validate:"omitempty,oneof=active blocked pending"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
// El área admin puede tocar plan y status; el self-service no.
type UpdateCompanyRequest struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	ResponsibleName *string `json:"responsible_name" validate:"omitempty,min=1,max=200"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=6"`
	Phone           *string `json:"phone"`
	Plan            *string `json:"plan" validate:"omitempty,oneof=basic professional enterprise"`
	Status          *string `json:"status" validate:"omitempty,oneof=active blocked pending"`
}

// UpdateProfileRequest entrada para el self-service (Settings): sin plan/status.
type UpdateProfileRequest struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	ResponsibleName *string `json:"responsible_name" validate:"omitempty,min=1,max=200"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=6"`
	Phone           *string `json:"phone"`
}

// CompanyResponse salida de una empresa (nunca incluye el password).
type CompanyResponse struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"company_name"`
	ResponsibleName string    `json:"responsible_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Plan            string    `json:"plan"`
	Status          string    `json:"status"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"created_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SubscriptionStatsResponse conteos de clientes por plan y estado (dashboard admin).
type SubscriptionStatsResponse struct {
	ByPlan   map[string]int `json:"by_plan"`
	ByStatus map[string]int `json:"by_status"`
}
