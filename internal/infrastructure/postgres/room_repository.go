package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL.
type RoomRepo struct {
	db querier
}

// NewRoomRepository construye el adaptador de persistencia para salas.
func NewRoomRepository(db querier) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create persiste una nueva sala.
func (r *RoomRepo) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, name, floor, description, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		room.ID, room.Name, room.Floor, room.Description, room.CompanyID, room.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// GetByID obtiene una sala por ID.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	query := `
		SELECT id, name, floor, description, company_id, created_at
		FROM rooms WHERE id = $1`
	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID, &room.Name, &room.Floor, &room.Description, &room.CompanyID, &room.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

// Update actualiza una sala existente. Sin filas afectadas -> domain.ErrNotFound.
func (r *RoomRepo) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms SET name = $2, floor = $3, description = $4
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, room.ID, room.Name, room.Floor, room.Description)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista salas por empresa con paginación.
func (r *RoomRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, name, floor, description, company_id, created_at
		FROM rooms WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Floor, &room.Description, &room.CompanyID, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}

// Delete elimina una sala por ID. Sin filas afectadas -> domain.ErrNotFound.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByCompany cuenta las salas de la empresa (cuota del plan).
func (r *RoomRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms WHERE company_id = $1`, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}
