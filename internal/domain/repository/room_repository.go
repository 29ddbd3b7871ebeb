package repository

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// RoomRepository define el puerto de persistencia para Room (DIP).
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Room, error)
	Delete(ctx context.Context, id string) error
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
