package repository

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// PlanRepository define el puerto de lectura para los planes de suscripción.
type PlanRepository interface {
	List(ctx context.Context) ([]*entity.Plan, error)
	GetByName(ctx context.Context, name string) (*entity.Plan, error)
}
