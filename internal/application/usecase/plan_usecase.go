package usecase

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// PlanUseCase lectura de los planes de suscripción.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// List devuelve los planes disponibles.
func (uc *PlanUseCase) List(ctx context.Context) (*dto.PlanListResponse, error) {
	plans, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, *entityToPlanResponse(p))
	}
	return &dto.PlanListResponse{Items: items}, nil
}

func entityToPlanResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		MaxVisitors:  p.MaxVisitors,
		MaxRooms:     p.MaxRooms,
	}
}
