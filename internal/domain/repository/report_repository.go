package repository

import (
	"context"
	"time"
)

// VisitsByRoomResult resultado crudo del conteo de visitas por sala.
// Lo produce la DB; el use case lo convierte en DTO.
type VisitsByRoomResult struct {
	RoomID   string
	RoomName string
	Count    int
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// VisitsByRoomSince cuenta visitas por sala de la empresa con
	// entry_time >= since.
	VisitsByRoomSince(ctx context.Context, companyID string, since time.Time) ([]VisitsByRoomResult, error)
}
