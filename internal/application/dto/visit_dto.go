package dto

import "time"

// CompanionInput acompañante dentro de la creación de una visita.
type CompanionInput struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document" validate:"required,min=1,max=50"`
}

// CreateVisitRequest entrada para registrar una visita completa
// (visita + acompañantes + crachá en una sola operación).
type CreateVisitRequest struct {
	VisitorID   string           `json:"visitor_id" validate:"required,uuid"`
	RoomID      string           `json:"room_id" validate:"required,uuid"`
	Responsible string           `json:"responsible" validate:"required,min=1,max=200"`
	BadgeCode   string           `json:"badge_code" validate:"required,min=1,max=20"`
	Companions  []CompanionInput `json:"companions"`
}

// CompanionResponse salida de un acompañante.
type CompanionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	VisitID  string `json:"visit_id"`
}

// BadgeResponse salida de un crachá.
type BadgeResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	VisitID  string `json:"visit_id"`
	IsActive bool   `json:"is_active"`
}

// VisitResponse salida de una visita con sus relaciones resueltas,
// lista para renderizar o imprimir el crachá.
type VisitResponse struct {
	ID          string              `json:"id"`
	VisitorID   string              `json:"visitor_id"`
	Visitor     *VisitorResponse    `json:"visitor,omitempty"`
	RoomID      string              `json:"room_id"`
	Room        *RoomResponse       `json:"room,omitempty"`
	Responsible string              `json:"responsible"`
	BadgeCode   string              `json:"badge_code"`
	EntryTime   time.Time           `json:"entry_time"`
	ExitTime    *time.Time          `json:"exit_time"`
	Status      string              `json:"status"`
	CompanyID   string              `json:"company_id"`
	Companions  []CompanionResponse `json:"companions"`
	Badge       *BadgeResponse      `json:"badge,omitempty"`
}

// VisitListResponse lista paginada de visitas.
type VisitListResponse struct {
	Items []VisitResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// BadgeCodeResponse sugerencia de código de crachá para el formulario.
type BadgeCodeResponse struct {
	Code string `json:"code"`
}
