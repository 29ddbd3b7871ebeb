package entity

import "time"

// Visitor representa una persona registrada que puede visitar la empresa.
// Pertenece a exactamente una Company (CompanyID).
type Visitor struct {
	ID        string
	Name      string
	Document  string  // documento de identidad, texto libre
	Photo     *string // imagen codificada como data-URI, opcional
	Phone     string
	Email     string
	Company   string // nombre de la empresa del visitante, texto libre opcional
	CompanyID string
	CreatedAt time.Time
}
