package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// RoomUseCase reglas de negocio para salas.
type RoomUseCase struct {
	repo        repository.RoomRepository
	companyRepo repository.CompanyRepository
	planRepo    repository.PlanRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(repo repository.RoomRepository, companyRepo repository.CompanyRepository, planRepo repository.PlanRepository) *RoomUseCase {
	return &RoomUseCase{repo: repo, companyRepo: companyRepo, planRepo: planRepo}
}

// Create crea una sala para la empresa actuante. Devuelve
// domain.ErrQuotaExceeded si el plan ya no admite más salas.
func (uc *RoomUseCase) Create(ctx context.Context, in dto.CreateRoomRequest, companyID string) (*dto.RoomResponse, error) {
	if err := uc.checkQuota(ctx, companyID); err != nil {
		return nil, err
	}
	room := &entity.Room{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Floor:       in.Floor,
		Description: in.Description,
		CompanyID:   companyID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return entityToRoomResponse(room), nil
}

// GetByID obtiene una sala de la empresa actuante.
func (uc *RoomUseCase) GetByID(ctx context.Context, id, companyID string) (*dto.RoomResponse, error) {
	room, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil || room.CompanyID != companyID {
		return nil, nil
	}
	return entityToRoomResponse(room), nil
}

// List lista las salas de la empresa, paginadas.
func (uc *RoomUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.RoomListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToRoomResponse(r))
	}
	return &dto.RoomListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita una sala de la empresa actuante.
func (uc *RoomUseCase) Update(ctx context.Context, id, companyID string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil || room.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		room.Name = *in.Name
	}
	if in.Floor != nil {
		room.Floor = *in.Floor
	}
	if in.Description != nil {
		room.Description = *in.Description
	}
	if err := uc.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return entityToRoomResponse(room), nil
}

// Delete elimina una sala de la empresa actuante.
func (uc *RoomUseCase) Delete(ctx context.Context, id, companyID string) error {
	room, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil || room.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *RoomUseCase) checkQuota(ctx context.Context, companyID string) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}
	plan, err := uc.planRepo.GetByName(ctx, company.Plan)
	if err != nil {
		return err
	}
	if plan == nil || plan.MaxRooms <= 0 {
		return nil
	}
	count, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if count >= plan.MaxRooms {
		return domain.ErrQuotaExceeded
	}
	return nil
}

func entityToRoomResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Floor:       r.Floor,
		Description: r.Description,
		CompanyID:   r.CompanyID,
		CreatedAt:   r.CreatedAt,
	}
}
