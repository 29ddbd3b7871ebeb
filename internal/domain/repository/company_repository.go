package repository

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// UpdatePasswordHash actualiza solo el hash (migración de filas legacy).
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	// Search busca por nombre, responsable o email (término ya normalizado).
	Search(ctx context.Context, term string, limit, offset int) ([]*entity.Company, error)
	Delete(ctx context.Context, id string) error
	// CountAdmins cuenta filas admin, incluidas las legacy con plan centinela.
	CountAdmins(ctx context.Context) (int, error)
	// CountByPlanAndStatus devuelve conteos de clientes por plan y por estado.
	CountByPlanAndStatus(ctx context.Context) (byPlan map[string]int, byStatus map[string]int, err error)
}
