package repository

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// VisitorRepository define el puerto de persistencia para Visitor (DIP).
type VisitorRepository interface {
	Create(ctx context.Context, visitor *entity.Visitor) error
	GetByID(ctx context.Context, id string) (*entity.Visitor, error)
	Update(ctx context.Context, visitor *entity.Visitor) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Visitor, error)
	Delete(ctx context.Context, id string) error
	// CountByCompany apoya la verificación de cuotas del plan.
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
