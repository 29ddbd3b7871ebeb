package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// CompanyUseCase reglas de negocio para empresas cliente: alta/gestión desde
// el área admin y actualización self-service del propio perfil.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa cliente (área admin). Genera ID, hashea el
// password y aplica estado inicial. Devuelve domain.ErrEmailAlreadyExists si
// el email ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.CompanyStatusActive
	}
	company := &entity.Company{
		ID:              uuid.New().String(),
		CompanyName:     in.CompanyName,
		ResponsibleName: in.ResponsibleName,
		Email:           in.Email,
		PasswordHash:    string(hash),
		Phone:           in.Phone,
		Plan:            in.Plan,
		Status:          status,
		Role:            entity.RoleCompany,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación y búsqueda opcional (área admin).
func (uc *CompanyUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.CompanyListResponse, error) {
	var (
		list []*entity.Company
		err  error
	)
	if term := foldForSearch(search); term != "" {
		list, err = uc.repo.Search(ctx, term, limit, offset)
	} else {
		list, err = uc.repo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una empresa desde el área admin (puede tocar plan/status).
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != company.Email {
		if other, err := uc.repo.GetByEmail(ctx, *in.Email); err != nil {
			return nil, err
		} else if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		company.Email = *in.Email
	}
	if in.CompanyName != nil {
		company.CompanyName = *in.CompanyName
	}
	if in.ResponsibleName != nil {
		company.ResponsibleName = *in.ResponsibleName
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Plan != nil {
		company.Plan = *in.Plan
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		company.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// UpdateProfile actualiza el propio perfil (Settings). No permite tocar
// plan, status ni rol.
func (uc *CompanyUseCase) UpdateProfile(ctx context.Context, companyID string, in dto.UpdateProfileRequest) (*dto.CompanyResponse, error) {
	full := dto.UpdateCompanyRequest{
		CompanyName:     in.CompanyName,
		ResponsibleName: in.ResponsibleName,
		Email:           in.Email,
		Password:        in.Password,
		Phone:           in.Phone,
	}
	return uc.Update(ctx, companyID, full)
}

// Delete elimina una empresa (acción explícita del área admin).
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SubscriptionStats conteos de clientes por plan y por estado (dashboard admin).
func (uc *CompanyUseCase) SubscriptionStats(ctx context.Context) (*dto.SubscriptionStatsResponse, error) {
	byPlan, byStatus, err := uc.repo.CountByPlanAndStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionStatsResponse{ByPlan: byPlan, ByStatus: byStatus}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:              c.ID,
		CompanyName:     c.CompanyName,
		ResponsibleName: c.ResponsibleName,
		Email:           c.Email,
		Phone:           c.Phone,
		Plan:            c.Plan,
		Status:          c.Status,
		Role:            c.Role,
		CreatedAt:       c.CreatedAt,
	}
}
