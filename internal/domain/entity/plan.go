package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan representa un plan de suscripción del portal con su precio mensual
// y cuotas. Los nombres deben coincidir con las constantes Plan*.
type Plan struct {
	ID           string
	Name         string // basic, professional, enterprise
	MonthlyPrice decimal.Decimal
	MaxVisitors  int // 0 = sin límite
	MaxRooms     int // 0 = sin límite
	CreatedAt    time.Time
}
