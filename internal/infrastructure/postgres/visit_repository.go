package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

const visitColumns = `id, visitor_id, room_id, responsible, badge_code, entry_time, exit_time, status, company_id, created_at`

// VisitRepo implementación del puerto VisitRepository sobre PostgreSQL.
// Acepta un querier para operar igual con el pool o dentro de una tx.
type VisitRepo struct {
	db querier
}

// NewVisitRepository construye el adaptador de persistencia para visitas.
func NewVisitRepository(db querier) *VisitRepo {
	return &VisitRepo{db: db}
}

// Create persiste una nueva visita. Código de crachá duplicado -> domain.ErrDuplicate.
func (r *VisitRepo) Create(ctx context.Context, v *entity.Visit) error {
	query := `
		INSERT INTO visits (id, visitor_id, room_id, responsible, badge_code, entry_time, exit_time, status, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.VisitorID, v.RoomID, v.Responsible, v.BadgeCode,
		v.EntryTime, v.ExitTime, v.Status, v.CompanyID, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID.
func (r *VisitRepo) GetByID(ctx context.Context, id string) (*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`
	var v entity.Visit
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.VisitorID, &v.RoomID, &v.Responsible, &v.BadgeCode,
		&v.EntryTime, &v.ExitTime, &v.Status, &v.CompanyID, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return &v, nil
}

// SetCheckedOut cierra la visita: fija el estado y exit_time en una sola
// sentencia, solo si la fila sigue activa. El conteo de filas afectadas
// permite al caller detectar un checkout concurrente.
func (r *VisitRepo) SetCheckedOut(ctx context.Context, id, status string) (int64, error) {
	query := `
		UPDATE visits SET status = $2, exit_time = now()
		WHERE id = $1 AND status = $3`
	cmd, err := r.db.Exec(ctx, query, id, status, entity.VisitStatusActive)
	if err != nil {
		return 0, fmt.Errorf("checkout visit: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListByCompany lista visitas por empresa, más recientes primero.
func (r *VisitRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Visit, error) {
	query := `
		SELECT ` + visitColumns + `
		FROM visits WHERE company_id = $1 ORDER BY entry_time DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListActiveByCompany lista las visitas en curso de la empresa.
func (r *VisitRepo) ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Visit, error) {
	query := `
		SELECT ` + visitColumns + `
		FROM visits WHERE company_id = $1 AND status = $2 ORDER BY entry_time DESC`
	rows, err := r.db.Query(ctx, query, companyID, entity.VisitStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active visits: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *VisitRepo) scanMany(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*entity.Visit, error) {
	var list []*entity.Visit
	for rows.Next() {
		var v entity.Visit
		err := rows.Scan(
			&v.ID, &v.VisitorID, &v.RoomID, &v.Responsible, &v.BadgeCode,
			&v.EntryTime, &v.ExitTime, &v.Status, &v.CompanyID, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
