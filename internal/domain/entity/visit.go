package entity

import "time"

// Estados válidos para Visit. El estado es la fuente de verdad para
// "visita activa"; exit_time se escribe en la misma transacción que el
// cambio de estado, por lo que no pueden divergir.
const (
	VisitStatusActive    = "active"
	VisitStatusCompleted = "completed"
	VisitStatusCancelled = "cancelled"
)

// Visit es la entidad transaccional central: un visitante en una sala,
// con responsable, crachá y acompañantes. Pertenece a una Company.
type Visit struct {
	ID          string
	VisitorID   string
	RoomID      string
	Responsible string // nombre del responsable, texto libre (no es FK)
	BadgeCode   string
	EntryTime   time.Time
	ExitTime    *time.Time // nil mientras la visita está activa
	Status      string     // active, completed, cancelled
	CompanyID   string
	CreatedAt   time.Time
}

// IsActive informa si la visita sigue en curso.
func (v *Visit) IsActive() bool {
	return v.Status == VisitStatusActive
}

// Companion es una persona que acompaña al visitante en una visita concreta.
// Se crea solo como parte de la creación de la visita.
type Companion struct {
	ID        string
	Name      string
	Document  string
	VisitID   string
	CreatedAt time.Time
}

// Badge es la credencial de acceso 1:1 con una Visit. En el checkout se
// desactiva, nunca se borra.
type Badge struct {
	ID        string
	Code      string
	VisitID   string
	IsActive  bool
	CreatedAt time.Time
}

// VisitAggregate es la visita con sus relaciones resueltas, lista para
// renderizar o imprimir el crachá.
type VisitAggregate struct {
	Visit      Visit
	Visitor    *Visitor
	Room       *Room
	Companions []Companion
	Badge      *Badge
}
