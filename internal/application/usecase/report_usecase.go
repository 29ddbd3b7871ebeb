package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// ReportUseCase reportes de visitas por sala para el dashboard de la empresa.
type ReportUseCase struct {
	repo repository.ReportRepository
	now  func() time.Time
}

// NewReportUseCase construye el caso de uso. now inyectable para tests.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, now: time.Now}
}

// VisitReport conteos de visitas por sala: hoy, últimos 7 días y últimos 30
// días, siempre limitados a la empresa actuante.
func (uc *ReportUseCase) VisitReport(ctx context.Context, companyID string) (*dto.VisitReportResponse, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, -1, 0)

	daily, err := uc.byRoomSince(ctx, companyID, today)
	if err != nil {
		return nil, err
	}
	weekly, err := uc.byRoomSince(ctx, companyID, weekAgo)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.byRoomSince(ctx, companyID, monthAgo)
	if err != nil {
		return nil, err
	}
	return &dto.VisitReportResponse{Daily: daily, Weekly: weekly, Monthly: monthly}, nil
}

func (uc *ReportUseCase) byRoomSince(ctx context.Context, companyID string, since time.Time) ([]dto.VisitsByRoom, error) {
	rows, err := uc.repo.VisitsByRoomSince(ctx, companyID, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VisitsByRoom, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.VisitsByRoom{RoomID: r.RoomID, RoomName: r.RoomName, Count: r.Count})
	}
	return out, nil
}
