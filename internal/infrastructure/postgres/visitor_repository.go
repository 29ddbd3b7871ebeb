package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.VisitorRepository = (*VisitorRepo)(nil)

// VisitorRepo implementación del puerto VisitorRepository sobre PostgreSQL.
type VisitorRepo struct {
	db querier
}

// NewVisitorRepository construye el adaptador de persistencia para visitantes.
func NewVisitorRepository(db querier) *VisitorRepo {
	return &VisitorRepo{db: db}
}

// Create persiste un nuevo visitante.
func (r *VisitorRepo) Create(ctx context.Context, v *entity.Visitor) error {
	query := `
		INSERT INTO visitors (id, name, document, photo, phone, email, company, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.Name, v.Document, v.Photo, v.Phone, v.Email, v.Company, v.CompanyID, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// GetByID obtiene un visitante por ID.
func (r *VisitorRepo) GetByID(ctx context.Context, id string) (*entity.Visitor, error) {
	query := `
		SELECT id, name, document, photo, phone, email, company, company_id, created_at
		FROM visitors WHERE id = $1`
	var v entity.Visitor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Document, &v.Photo, &v.Phone, &v.Email, &v.Company, &v.CompanyID, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visitor: %w", err)
	}
	return &v, nil
}

// Update actualiza un visitante existente. Sin filas afectadas -> domain.ErrNotFound.
func (r *VisitorRepo) Update(ctx context.Context, v *entity.Visitor) error {
	query := `
		UPDATE visitors
		   SET name = $2, document = $3, photo = $4, phone = $5, email = $6, company = $7
		 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		v.ID, v.Name, v.Document, v.Photo, v.Phone, v.Email, v.Company,
	)
	if err != nil {
		return fmt.Errorf("update visitor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista visitantes por empresa con paginación.
func (r *VisitorRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Visitor, error) {
	query := `
		SELECT id, name, document, photo, phone, email, company, company_id, created_at
		FROM visitors WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visitor
	for rows.Next() {
		var v entity.Visitor
		if err := rows.Scan(&v.ID, &v.Name, &v.Document, &v.Photo, &v.Phone, &v.Email, &v.Company, &v.CompanyID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina un visitante por ID. Sin filas afectadas -> domain.ErrNotFound.
func (r *VisitorRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM visitors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visitor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByCompany cuenta los visitantes de la empresa (cuota del plan).
func (r *VisitorRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE company_id = $1`, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count visitors: %w", err)
	}
	return count, nil
}
