package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
	"github.com/jhoicas/portaria-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// DefaultAdmin credenciales del administrador creado por el bootstrap.
type DefaultAdmin struct {
	Email    string
	Password string
}

// AuthUseCase casos de uso de autenticación: login de empresa, login de
// administrador, revalidación de sesión y bootstrap del admin por defecto.
type AuthUseCase struct {
	companyRepo  repository.CompanyRepository
	jwtCfg       JWTConfig
	defaultAdmin DefaultAdmin
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(companyRepo repository.CompanyRepository, jwtCfg JWTConfig, defaultAdmin DefaultAdmin) *AuthUseCase {
	return &AuthUseCase{companyRepo: companyRepo, jwtCfg: jwtCfg, defaultAdmin: defaultAdmin}
}

// LoginCompany verifica email/password de una empresa activa, genera JWT y
// retorna token + perfil. El mensaje de error no distingue email desconocido
// de password incorrecto; una cuenta bloqueada o pendiente sí responde distinto.
func (uc *AuthUseCase) LoginCompany(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	company, err := uc.verify(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	role := entity.RoleCompany
	if company.IsAdmin() {
		role = entity.RoleAdmin
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, company.ID, company.Email, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Company: *toCompanyResponse(company)}, nil
}

// LoginAdmin como LoginCompany pero exige rol de administrador además de
// status activo. Las dos condiciones se exigen siempre juntas.
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	company, err := uc.verify(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if !company.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, company.ID, company.Email, entity.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Company: *toCompanyResponse(company)}, nil
}

// verify resuelve la empresa por email y compara credenciales. Orden de
// chequeo: credencial primero, status después, para que una cuenta bloqueada
// con password incorrecto no revele su existencia.
func (uc *AuthUseCase) verify(ctx context.Context, email, password string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.comparePassword(ctx, company, password); err != nil {
		return nil, err
	}
	if !company.IsActive() {
		return nil, domain.ErrCompanyBlocked
	}
	return company, nil
}

// comparePassword compara contra el hash bcrypt. Filas legacy con password
// plano (sin prefijo "$2") se comparan en tiempo constante y se migran a
// bcrypt tras un login exitoso.
func (uc *AuthUseCase) comparePassword(ctx context.Context, company *entity.Company, password string) error {
	if strings.HasPrefix(company.PasswordHash, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(password)) != nil {
			return domain.ErrUnauthorized
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(company.PasswordHash), []byte(password)) != 1 {
		return domain.ErrUnauthorized
	}
	if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
		// Migración oportunista; si falla, el próximo login lo reintenta.
		_ = uc.companyRepo.UpdatePasswordHash(ctx, company.ID, string(hash))
		company.PasswordHash = string(hash)
	}
	return nil
}

// Me revalida la sesión: relee la fila de la empresa. Devuelve
// ErrUnauthorized si la fila ya no existe y ErrCompanyBlocked si dejó de
// estar activa (empresa bloqueada en medio de la sesión).
func (uc *AuthUseCase) Me(ctx context.Context, companyID string) (*dto.MeResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	if !company.IsActive() {
		return nil, domain.ErrCompanyBlocked
	}
	role := entity.RoleCompany
	if company.IsAdmin() {
		role = entity.RoleAdmin
	}
	return &dto.MeResponse{Company: *toCompanyResponse(company), Role: role}, nil
}

// EnsureDefaultAdmin bootstrap idempotente: si no existe ninguna fila admin
// (rol dedicado o plan centinela legacy), crea una con las credenciales por
// defecto. Devuelve true si creó la fila.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	count, err := uc.companyRepo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(uc.defaultAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &entity.Company{
		ID:              uuid.New().String(),
		CompanyName:     "Administrador",
		ResponsibleName: "Administrador",
		Email:           uc.defaultAdmin.Email,
		PasswordHash:    string(hash),
		Plan:            entity.PlanEnterprise,
		Status:          entity.CompanyStatusActive,
		Role:            entity.RoleAdmin,
		CreatedAt:       time.Now(),
	}
	if err := uc.companyRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
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
