package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación read-only del puerto PlanRepository.
type PlanRepo struct {
	db querier
}

// NewPlanRepository construye el adaptador de lectura para planes.
func NewPlanRepository(db querier) *PlanRepo {
	return &PlanRepo{db: db}
}

// List devuelve todos los planes ordenados por precio.
func (r *PlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	query := `
		SELECT id, name, monthly_price, max_visitors, max_rooms, created_at
		FROM plans ORDER BY monthly_price`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.MaxVisitors, &p.MaxRooms, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByName obtiene un plan por nombre (basic, professional, enterprise).
func (r *PlanRepo) GetByName(ctx context.Context, name string) (*entity.Plan, error) {
	query := `
		SELECT id, name, monthly_price, max_visitors, max_rooms, created_at
		FROM plans WHERE name = $1`
	var p entity.Plan
	err := r.db.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.MaxVisitors, &p.MaxRooms, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}
