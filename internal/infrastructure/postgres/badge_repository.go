package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.BadgeRepository = (*BadgeRepo)(nil)

// BadgeRepo implementación del puerto BadgeRepository sobre PostgreSQL.
type BadgeRepo struct {
	db querier
}

// NewBadgeRepository construye el adaptador de persistencia para crachás.
func NewBadgeRepository(db querier) *BadgeRepo {
	return &BadgeRepo{db: db}
}

// Create persiste el crachá de la visita. Código duplicado -> domain.ErrDuplicate.
func (r *BadgeRepo) Create(ctx context.Context, b *entity.Badge) error {
	query := `
		INSERT INTO badges (id, code, visit_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, b.ID, b.Code, b.VisitID, b.IsActive, b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert badge: %w", err)
	}
	return nil
}

// GetByVisit obtiene el crachá asociado a una visita.
func (r *BadgeRepo) GetByVisit(ctx context.Context, visitID string) (*entity.Badge, error) {
	query := `
		SELECT id, code, visit_id, is_active, created_at
		FROM badges WHERE visit_id = $1`
	var b entity.Badge
	err := r.db.QueryRow(ctx, query, visitID).Scan(&b.ID, &b.Code, &b.VisitID, &b.IsActive, &b.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get badge: %w", err)
	}
	return &b, nil
}

// DeactivateByVisit apaga los crachás de la visita. Idempotente: no falla
// si ya estaban inactivos o la visita no tiene crachá.
func (r *BadgeRepo) DeactivateByVisit(ctx context.Context, visitID string) error {
	query := `UPDATE badges SET is_active = false WHERE visit_id = $1`
	if _, err := r.db.Exec(ctx, query, visitID); err != nil {
		return fmt.Errorf("deactivate badges: %w", err)
	}
	return nil
}
