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

// searchScanLimit cuántas filas se recorren como máximo al filtrar una
// búsqueda en memoria (el folding de acentos no se puede delegar a ILIKE
// sin la extensión unaccent).
const searchScanLimit = 500

// VisitorUseCase reglas de negocio para visitantes, con verificación de
// cuota del plan al crear.
type VisitorUseCase struct {
	repo        repository.VisitorRepository
	companyRepo repository.CompanyRepository
	planRepo    repository.PlanRepository
}

// NewVisitorUseCase construye el caso de uso.
func NewVisitorUseCase(repo repository.VisitorRepository, companyRepo repository.CompanyRepository, planRepo repository.PlanRepository) *VisitorUseCase {
	return &VisitorUseCase{repo: repo, companyRepo: companyRepo, planRepo: planRepo}
}

// Create registra un visitante para la empresa actuante. Devuelve
// domain.ErrQuotaExceeded si el plan de la empresa ya no admite más visitantes.
func (uc *VisitorUseCase) Create(ctx context.Context, in dto.CreateVisitorRequest, companyID string) (*dto.VisitorResponse, error) {
	if err := uc.checkQuota(ctx, companyID); err != nil {
		return nil, err
	}
	visitor := &entity.Visitor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Photo:     in.Photo,
		Phone:     in.Phone,
		Email:     in.Email,
		Company:   in.Company,
		CompanyID: companyID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, visitor); err != nil {
		return nil, err
	}
	return entityToVisitorResponse(visitor), nil
}

// GetByID obtiene un visitante de la empresa actuante. Un visitante de otra
// empresa responde como inexistente.
func (uc *VisitorUseCase) GetByID(ctx context.Context, id, companyID string) (*dto.VisitorResponse, error) {
	visitor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visitor == nil || visitor.CompanyID != companyID {
		return nil, nil
	}
	return entityToVisitorResponse(visitor), nil
}

// List lista los visitantes de la empresa. Con search no vacío filtra por
// nombre, documento o email ignorando acentos y mayúsculas.
func (uc *VisitorUseCase) List(ctx context.Context, companyID, search string, limit, offset int) (*dto.VisitorListResponse, error) {
	term := foldForSearch(search)
	if term == "" {
		list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
		if err != nil {
			return nil, err
		}
		return visitorListResponse(list, limit, offset), nil
	}

	list, err := uc.repo.ListByCompany(ctx, companyID, searchScanLimit, 0)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Visitor, 0)
	for _, v := range list {
		if matchesSearch(term, v.Name, v.Document, v.Email) {
			filtered = append(filtered, v)
		}
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return visitorListResponse(filtered[offset:end], limit, offset), nil
}

// Update edita un visitante de la empresa actuante (campos opcionales).
func (uc *VisitorUseCase) Update(ctx context.Context, id, companyID string, in dto.UpdateVisitorRequest) (*dto.VisitorResponse, error) {
	visitor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visitor == nil || visitor.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		visitor.Name = *in.Name
	}
	if in.Document != nil {
		visitor.Document = *in.Document
	}
	if in.Phone != nil {
		visitor.Phone = *in.Phone
	}
	if in.Email != nil {
		visitor.Email = *in.Email
	}
	if in.Company != nil {
		visitor.Company = *in.Company
	}
	if in.Photo != nil {
		visitor.Photo = in.Photo
	}
	if err := uc.repo.Update(ctx, visitor); err != nil {
		return nil, err
	}
	return entityToVisitorResponse(visitor), nil
}

// Delete elimina un visitante de la empresa actuante.
func (uc *VisitorUseCase) Delete(ctx context.Context, id, companyID string) error {
	visitor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if visitor == nil || visitor.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *VisitorUseCase) checkQuota(ctx context.Context, companyID string) error {
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
	if plan == nil || plan.MaxVisitors <= 0 {
		return nil // plan sin cuota
	}
	count, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if count >= plan.MaxVisitors {
		return domain.ErrQuotaExceeded
	}
	return nil
}

func visitorListResponse(list []*entity.Visitor, limit, offset int) *dto.VisitorListResponse {
	items := make([]dto.VisitorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *entityToVisitorResponse(v))
	}
	return &dto.VisitorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func entityToVisitorResponse(v *entity.Visitor) *dto.VisitorResponse {
	if v == nil {
		return nil
	}
	return &dto.VisitorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Document:  v.Document,
		Phone:     v.Phone,
		Email:     v.Email,
		Company:   v.Company,
		Photo:     v.Photo,
		CompanyID: v.CompanyID,
		CreatedAt: v.CreatedAt,
	}
}
