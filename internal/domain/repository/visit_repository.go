package repository

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// VisitRepository define el puerto de persistencia para Visit (DIP).
// El filtro de "visitas activas" usa status = 'active' como fuente de verdad.
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	GetByID(ctx context.Context, id string) (*entity.Visit, error)
	// SetCheckedOut marca la visita con el estado dado y fija exit_time.
	// Solo transiciona filas con status = 'active'; devuelve cuántas tocó.
	SetCheckedOut(ctx context.Context, id, status string) (int64, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Visit, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Visit, error)
}

// CompanionRepository define el puerto de persistencia para Companion.
type CompanionRepository interface {
	CreateBatch(ctx context.Context, companions []*entity.Companion) error
	ListByVisit(ctx context.Context, visitID string) ([]*entity.Companion, error)
}

// BadgeRepository define el puerto de persistencia para Badge.
type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error
	GetByVisit(ctx context.Context, visitID string) (*entity.Badge, error)
	// DeactivateByVisit apaga is_active de los crachás de la visita.
	DeactivateByVisit(ctx context.Context, visitID string) error
}
