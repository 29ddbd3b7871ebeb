package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación read-only del puerto ReportRepository.
type ReportRepo struct {
	db querier
}

// NewReportRepository construye el adaptador de consultas de reportes.
func NewReportRepository(db querier) *ReportRepo {
	return &ReportRepo{db: db}
}

// VisitsByRoomSince cuenta visitas por sala de la empresa desde la fecha dada.
func (r *ReportRepo) VisitsByRoomSince(ctx context.Context, companyID string, since time.Time) ([]repository.VisitsByRoomResult, error) {
	query := `
		SELECT v.room_id, r.name, COUNT(*)
		  FROM visits v
		  JOIN rooms r ON r.id = v.room_id
		 WHERE v.company_id = $1 AND v.entry_time >= $2
		 GROUP BY v.room_id, r.name
		 ORDER BY COUNT(*) DESC`
	rows, err := r.db.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("visits by room: %w", err)
	}
	defer rows.Close()
	var results []repository.VisitsByRoomResult
	for rows.Next() {
		var res repository.VisitsByRoomResult
		if err := rows.Scan(&res.RoomID, &res.RoomName, &res.Count); err != nil {
			return nil, fmt.Errorf("scan visits by room: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
