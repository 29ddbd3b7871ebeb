package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, company_name, responsible_name, email, password, phone, plan, status, role, created_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa. Email duplicado -> domain.ErrEmailAlreadyExists.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (id, company_name, responsible_name, email, password, phone, plan, status, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.CompanyName, c.ResponsibleName, c.Email, c.PasswordHash,
		c.Phone, c.Plan, c.Status, c.Role, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene una empresa por email.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE email = $1`
	c, err := r.scanOne(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by email: %w", err)
	}
	return c, nil
}

// Update actualiza una empresa existente. Sin filas afectadas -> domain.ErrNotFound.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		   SET company_name = $2, responsible_name = $3, email = $4, password = $5,
		       phone = $6, plan = $7, status = $8, role = $9
		 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.CompanyName, c.ResponsibleName, c.Email, c.PasswordHash,
		c.Phone, c.Plan, c.Status, c.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePasswordHash actualiza solo el hash (migración de filas legacy).
func (r *CompanyRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE companies SET password = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update company password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Search busca por nombre, responsable o email (ILIKE sobre el término).
func (r *CompanyRepo) Search(ctx context.Context, term string, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		  FROM companies
		 WHERE company_name ILIKE '%' || $1 || '%'
		    OR responsible_name ILIKE '%' || $1 || '%'
		    OR email ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, term, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Delete elimina una empresa por ID. Sin filas afectadas -> domain.ErrNotFound.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountAdmins cuenta filas admin, incluidas las legacy con plan centinela.
func (r *CompanyRepo) CountAdmins(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM companies WHERE role = $1 OR plan = $2`
	var count int
	if err := r.db.QueryRow(ctx, query, entity.RoleAdmin, entity.LegacyAdminPlanSentinel).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

// CountByPlanAndStatus devuelve conteos de clientes (no admins) por plan y estado.
func (r *CompanyRepo) CountByPlanAndStatus(ctx context.Context) (map[string]int, map[string]int, error) {
	const query = `SELECT plan, status, COUNT(*) FROM companies WHERE role <> $1 GROUP BY plan, status`
	rows, err := r.db.Query(ctx, query, entity.RoleAdmin)
	if err != nil {
		return nil, nil, fmt.Errorf("count companies by plan/status: %w", err)
	}
	defer rows.Close()

	byPlan := map[string]int{}
	byStatus := map[string]int{}
	for rows.Next() {
		var plan, status string
		var count int
		if err := rows.Scan(&plan, &status, &count); err != nil {
			return nil, nil, fmt.Errorf("scan plan/status count: %w", err)
		}
		byPlan[plan] += count
		byStatus[status] += count
	}
	return byPlan, byStatus, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CompanyRepo) scanOne(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.ResponsibleName, &c.Email, &c.PasswordHash,
		&c.Phone, &c.Plan, &c.Status, &c.Role, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) scanMany(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*entity.Company, error) {
	var list []*entity.Company
	for rows.Next() {
		c, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
