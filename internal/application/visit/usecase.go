package visit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// VisitUseCase orquesta el ciclo de vida de una visita: creación del
// agregado (visita + acompañantes + crachá), checkout, cancelación y
// lecturas con relaciones resueltas.
type VisitUseCase struct {
	visitRepo     repository.VisitRepository
	companionRepo repository.CompanionRepository
	badgeRepo     repository.BadgeRepository
	visitorRepo   repository.VisitorRepository
	roomRepo      repository.RoomRepository
	tx            TxRunner
	cache         ActiveVisitsCache // puede ser nil
}

// NewVisitUseCase construye el caso de uso. cache puede ser nil.
func NewVisitUseCase(
	visitRepo repository.VisitRepository,
	companionRepo repository.CompanionRepository,
	badgeRepo repository.BadgeRepository,
	visitorRepo repository.VisitorRepository,
	roomRepo repository.RoomRepository,
	tx TxRunner,
	cache ActiveVisitsCache,
) *VisitUseCase {
	return &VisitUseCase{
		visitRepo:     visitRepo,
		companionRepo: companionRepo,
		badgeRepo:     badgeRepo,
		visitorRepo:   visitorRepo,
		roomRepo:      roomRepo,
		tx:            tx,
		cache:         cache,
	}
}

// Create registra una visita completa en una sola transacción.
// La empresa dueña se resuelve: company del visitante, si no la de la sala,
// si no la del caller. Visitante y sala deben pertenecer a la empresa actuante.
func (uc *VisitUseCase) Create(ctx context.Context, in dto.CreateVisitRequest, companyID string) (*dto.VisitResponse, error) {
	if in.VisitorID == "" || in.RoomID == "" || in.Responsible == "" || in.BadgeCode == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	visitor, err := uc.visitorRepo.GetByID(ctx, in.VisitorID)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, domain.ErrNotFound
	}
	room, err := uc.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if visitor.CompanyID != "" && visitor.CompanyID != companyID {
		return nil, domain.ErrTenantMismatch
	}
	if room.CompanyID != "" && room.CompanyID != companyID {
		return nil, domain.ErrTenantMismatch
	}

	owner := visitor.CompanyID
	if owner == "" {
		owner = room.CompanyID
	}
	if owner == "" {
		owner = companyID
	}

	now := time.Now()
	v := &entity.Visit{
		ID:          uuid.New().String(),
		VisitorID:   visitor.ID,
		RoomID:      room.ID,
		Responsible: in.Responsible,
		BadgeCode:   in.BadgeCode,
		EntryTime:   now,
		ExitTime:    nil,
		Status:      entity.VisitStatusActive,
		CompanyID:   owner,
		CreatedAt:   now,
	}
	companions := make([]*entity.Companion, 0, len(in.Companions))
	for _, c := range in.Companions {
		if c.Name == "" || c.Document == "" {
			return nil, domain.ErrInvalidInput
		}
		companions = append(companions, &entity.Companion{
			ID:        uuid.New().String(),
			Name:      c.Name,
			Document:  c.Document,
			VisitID:   v.ID,
			CreatedAt: now,
		})
	}
	badge := &entity.Badge{
		ID:        uuid.New().String(),
		Code:      in.BadgeCode,
		VisitID:   v.ID,
		IsActive:  true,
		CreatedAt: now,
	}

	err = uc.tx.Run(ctx, func(
		visitRepo repository.VisitRepository,
		companionRepo repository.CompanionRepository,
		badgeRepo repository.BadgeRepository,
	) error {
		if err := visitRepo.Create(ctx, v); err != nil {
			return err
		}
		if len(companions) > 0 {
			if err := companionRepo.CreateBatch(ctx, companions); err != nil {
				return err
			}
		}
		return badgeRepo.Create(ctx, badge)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, owner)

	agg := &entity.VisitAggregate{Visit: *v, Visitor: visitor, Room: room, Badge: badge}
	for _, c := range companions {
		agg.Companions = append(agg.Companions, *c)
	}
	return aggregateToResponse(agg), nil
}

// Checkout termina una visita activa: status=completed y exit_time en la
// fila de la visita, is_active=false en su crachá, todo en una transacción.
// Una visita ya cerrada o cancelada devuelve ErrVisitNotActive (el checkout
// es de una sola vía).
func (uc *VisitUseCase) Checkout(ctx context.Context, visitID, companyID string) error {
	return uc.terminate(ctx, visitID, companyID, entity.VisitStatusCompleted)
}

// Cancel como Checkout pero deja la visita en estado cancelled.
func (uc *VisitUseCase) Cancel(ctx context.Context, visitID, companyID string) error {
	return uc.terminate(ctx, visitID, companyID, entity.VisitStatusCancelled)
}

func (uc *VisitUseCase) terminate(ctx context.Context, visitID, companyID, status string) error {
	v, err := uc.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	if v.CompanyID != companyID {
		return domain.ErrTenantMismatch
	}
	if !v.IsActive() {
		return domain.ErrVisitNotActive
	}
	err = uc.tx.Run(ctx, func(
		visitRepo repository.VisitRepository,
		_ repository.CompanionRepository,
		badgeRepo repository.BadgeRepository,
	) error {
		affected, err := visitRepo.SetCheckedOut(ctx, visitID, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Otro checkout concurrente ganó la carrera.
			return domain.ErrVisitNotActive
		}
		return badgeRepo.DeactivateByVisit(ctx, visitID)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, companyID)
	return nil
}

// GetByID devuelve la visita con visitante, sala, acompañantes y crachá.
func (uc *VisitUseCase) GetByID(ctx context.Context, visitID, companyID string) (*dto.VisitResponse, error) {
	v, err := uc.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if v == nil || v.CompanyID != companyID {
		// Tenant ajeno responde igual que inexistente: no filtrar existencia.
		return nil, domain.ErrNotFound
	}
	return uc.assemble(ctx, v)
}

// List devuelve las visitas de la empresa, paginadas.
func (uc *VisitUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.VisitListResponse, error) {
	visits, err := uc.visitRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VisitResponse, 0, len(visits))
	for _, v := range visits {
		resp, err := uc.assemble(ctx, v)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.VisitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListActive devuelve las visitas activas de la empresa (status='active' es
// la fuente de verdad). Pasa por el caché si está configurado.
func (uc *VisitUseCase) ListActive(ctx context.Context, companyID string) ([]dto.VisitResponse, error) {
	if uc.cache != nil {
		if payload, ok := uc.cache.Get(ctx, companyID); ok {
			var cached []dto.VisitResponse
			if json.Unmarshal(payload, &cached) == nil {
				return cached, nil
			}
		}
	}
	visits, err := uc.visitRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VisitResponse, 0, len(visits))
	for _, v := range visits {
		resp, err := uc.assemble(ctx, v)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	if uc.cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			uc.cache.Set(ctx, companyID, payload)
		}
	}
	return items, nil
}

// Aggregate devuelve el agregado de entidades para la generación del PDF.
func (uc *VisitUseCase) Aggregate(ctx context.Context, visitID, companyID string) (*entity.VisitAggregate, error) {
	v, err := uc.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if v == nil || v.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return uc.loadAggregate(ctx, v)
}

func (uc *VisitUseCase) assemble(ctx context.Context, v *entity.Visit) (*dto.VisitResponse, error) {
	agg, err := uc.loadAggregate(ctx, v)
	if err != nil {
		return nil, err
	}
	return aggregateToResponse(agg), nil
}

func (uc *VisitUseCase) loadAggregate(ctx context.Context, v *entity.Visit) (*entity.VisitAggregate, error) {
	agg := &entity.VisitAggregate{Visit: *v}
	visitor, err := uc.visitorRepo.GetByID(ctx, v.VisitorID)
	if err != nil {
		return nil, err
	}
	agg.Visitor = visitor
	room, err := uc.roomRepo.GetByID(ctx, v.RoomID)
	if err != nil {
		return nil, err
	}
	agg.Room = room
	companions, err := uc.companionRepo.ListByVisit(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range companions {
		agg.Companions = append(agg.Companions, *c)
	}
	badge, err := uc.badgeRepo.GetByVisit(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	agg.Badge = badge
	return agg, nil
}

func (uc *VisitUseCase) invalidate(ctx context.Context, companyID string) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, companyID)
	}
}

func aggregateToResponse(agg *entity.VisitAggregate) *dto.VisitResponse {
	v := agg.Visit
	resp := &dto.VisitResponse{
		ID:          v.ID,
		VisitorID:   v.VisitorID,
		RoomID:      v.RoomID,
		Responsible: v.Responsible,
		BadgeCode:   v.BadgeCode,
		EntryTime:   v.EntryTime,
		ExitTime:    v.ExitTime,
		Status:      v.Status,
		CompanyID:   v.CompanyID,
		Companions:  make([]dto.CompanionResponse, 0, len(agg.Companions)),
	}
	if agg.Visitor != nil {
		resp.Visitor = &dto.VisitorResponse{
			ID:        agg.Visitor.ID,
			Name:      agg.Visitor.Name,
			Document:  agg.Visitor.Document,
			Phone:     agg.Visitor.Phone,
			Email:     agg.Visitor.Email,
			Company:   agg.Visitor.Company,
			Photo:     agg.Visitor.Photo,
			CompanyID: agg.Visitor.CompanyID,
			CreatedAt: agg.Visitor.CreatedAt,
		}
	}
	if agg.Room != nil {
		resp.Room = &dto.RoomResponse{
			ID:          agg.Room.ID,
			Name:        agg.Room.Name,
			Floor:       agg.Room.Floor,
			Description: agg.Room.Description,
			CompanyID:   agg.Room.CompanyID,
			CreatedAt:   agg.Room.CreatedAt,
		}
	}
	for _, c := range agg.Companions {
		resp.Companions = append(resp.Companions, dto.CompanionResponse{
			ID:       c.ID,
			Name:     c.Name,
			Document: c.Document,
			VisitID:  c.VisitID,
		})
	}
	if agg.Badge != nil {
		resp.Badge = &dto.BadgeResponse{
			ID:       agg.Badge.ID,
			Code:     agg.Badge.Code,
			VisitID:  agg.Badge.VisitID,
			IsActive: agg.Badge.IsActive,
		}
	}
	return resp
}
