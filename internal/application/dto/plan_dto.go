package dto

import "github.com/shopspring/decimal"

// PlanResponse salida de un plan de suscripción.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	MaxVisitors  int             `json:"max_visitors"`
	MaxRooms     int             `json:"max_rooms"`
}

// PlanListResponse lista de planes disponibles.
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
}
