package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.CompanionRepository = (*CompanionRepo)(nil)

// CompanionRepo implementación del puerto CompanionRepository sobre PostgreSQL.
type CompanionRepo struct {
	db querier
}

// NewCompanionRepository construye el adaptador de persistencia para acompañantes.
func NewCompanionRepository(db querier) *CompanionRepo {
	return &CompanionRepo{db: db}
}

// CreateBatch inserta los acompañantes de una visita. Se llama dentro de la
// misma transacción que crea la visita.
func (r *CompanionRepo) CreateBatch(ctx context.Context, companions []*entity.Companion) error {
	query := `
		INSERT INTO companions (id, name, document, visit_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	for _, c := range companions {
		if _, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Document, c.VisitID, c.CreatedAt); err != nil {
			return fmt.Errorf("insert companion: %w", err)
		}
	}
	return nil
}

// ListByVisit lista los acompañantes de una visita.
func (r *CompanionRepo) ListByVisit(ctx context.Context, visitID string) ([]*entity.Companion, error) {
	query := `
		SELECT id, name, document, visit_id, created_at
		FROM companions WHERE visit_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, visitID)
	if err != nil {
		return nil, fmt.Errorf("list companions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Companion
	for rows.Next() {
		var c entity.Companion
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.VisitID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan companion: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
