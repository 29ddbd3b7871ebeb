package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/portaria-api/internal/application/auth"
	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del repositorio de empresas
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	byID    map[string]*entity.Company
	byEmail map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{
		byID:    map[string]*entity.Company{},
		byEmail: map[string]*entity.Company{},
	}
	for _, c := range companies {
		cp := *c
		r.byID[c.ID] = &cp
		r.byEmail[c.Email] = &cp
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	if _, ok := r.byEmail[c.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *c
	r.byID[c.ID] = &cp
	r.byEmail[c.Email] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.byID[id], nil
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	return r.byEmail[email], nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	r.byEmail[c.Email] = &cp
	return nil
}

func (r *fakeCompanyRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.PasswordHash = hash
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Search(_ context.Context, _ string, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byEmail, c.Email)
	delete(r.byID, id)
	return nil
}

func (r *fakeCompanyRepo) CountAdmins(_ context.Context) (int, error) {
	count := 0
	for _, c := range r.byID {
		if c.Role == entity.RoleAdmin || c.Plan == entity.LegacyAdminPlanSentinel {
			count++
		}
	}
	return count, nil
}

func (r *fakeCompanyRepo) CountByPlanAndStatus(_ context.Context) (map[string]int, map[string]int, error) {
	return nil, nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "portaria-test"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthUC(repo *fakeCompanyRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	}, auth.DefaultAdmin{Email: "admin@exemplo.com", Password: "admin123"})
}

func activeCompany(t *testing.T, id, email, password string) *entity.Company {
	t.Helper()
	return &entity.Company{
		ID:              id,
		CompanyName:     "Empresa " + id,
		ResponsibleName: "Responsable",
		Email:           email,
		PasswordHash:    mustHash(t, password),
		Plan:            entity.PlanBasic,
		Status:          entity.CompanyStatusActive,
		Role:            entity.RoleCompany,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login de empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginCompany_CredencialesCorrectas(t *testing.T) {
	repo := newFakeCompanyRepo(activeCompany(t, "c1", "acme@test.com", "secreta1"))
	uc := newAuthUC(repo)

	out, err := uc.LoginCompany(context.Background(), dto.LoginRequest{Email: "acme@test.com", Password: "secreta1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token, "el login debe emitir un token")
	assert.Equal(t, "acme@test.com", out.Company.Email)
}

func TestLoginCompany_PasswordIncorrecto(t *testing.T) {
	repo := newFakeCompanyRepo(activeCompany(t, "c1", "acme@test.com", "secreta1"))
	uc := newAuthUC(repo)

	_, err := uc.LoginCompany(context.Background(), dto.LoginRequest{Email: "acme@test.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginCompany_EmailDesconocido(t *testing.T) {
	uc := newAuthUC(newFakeCompanyRepo())

	_, err := uc.LoginCompany(context.Background(), dto.LoginRequest{Email: "nadie@test.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y password incorrecto deben dar el mismo error")
}

func TestLoginCompany_CuentaBloqueada(t *testing.T) {
	c := activeCompany(t, "c1", "acme@test.com", "secreta1")
	c.Status = entity.CompanyStatusBlocked
	uc := newAuthUC(newFakeCompanyRepo(c))

	_, err := uc.LoginCompany(context.Background(), dto.LoginRequest{Email: "acme@test.com", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrCompanyBlocked)
}

func TestLoginCompany_CuentaBloqueadaConPasswordIncorrecto(t *testing.T) {
	c := activeCompany(t, "c1", "acme@test.com", "secreta1")
	c.Status = entity.CompanyStatusBlocked
	uc := newAuthUC(newFakeCompanyRepo(c))

	// El password incorrecto gana: no se revela que la cuenta existe bloqueada.
	_, err := uc.LoginCompany(context.Background(), dto.LoginRequest{Email: "acme@test.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginCompany_FilaLegacyConPasswordPlano_SeMigra(t *testing.T) {
	c := activeCompany(t, "c1", "acme@test.com", "ignorado")
	c.PasswordHash = "plano123" // fila legada sin hash
	repo := newFakeCompanyRepo(c)
	uc := newAuthUC(repo)

	out, err := uc.LoginCompany(context.Background(), dto.LoginRequest{Email: "acme@test.com", Password: "plano123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	stored, _ := repo.GetByID(context.Background(), "c1")
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"),
		"tras un login exitoso el password plano debe quedar rehasheado con bcrypt")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("plano123")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login de administrador
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginAdmin_RolAdmin(t *testing.T) {
	c := activeCompany(t, "a1", "admin@test.com", "admin123")
	c.Role = entity.RoleAdmin
	uc := newAuthUC(newFakeCompanyRepo(c))

	out, err := uc.LoginAdmin(context.Background(), dto.LoginRequest{Email: "admin@test.com", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestLoginAdmin_EmpresaComunRechazada(t *testing.T) {
	uc := newAuthUC(newFakeCompanyRepo(activeCompany(t, "c1", "acme@test.com", "secreta1")))

	_, err := uc.LoginAdmin(context.Background(), dto.LoginRequest{Email: "acme@test.com", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"una empresa sin rol admin no puede entrar al área administrativa")
}

func TestLoginAdmin_PlanCentinelaLegacy(t *testing.T) {
	// Filas legacy marcaban al admin con el plan 'administrator'.
	c := activeCompany(t, "a1", "legacy@test.com", "admin123")
	c.Plan = entity.LegacyAdminPlanSentinel
	uc := newAuthUC(newFakeCompanyRepo(c))

	_, err := uc.LoginAdmin(context.Background(), dto.LoginRequest{Email: "legacy@test.com", Password: "admin123"})
	assert.NoError(t, err, "el centinela legacy sigue siendo reconocido como admin")
}

func TestLoginAdmin_AdminBloqueado(t *testing.T) {
	c := activeCompany(t, "a1", "admin@test.com", "admin123")
	c.Role = entity.RoleAdmin
	c.Status = entity.CompanyStatusBlocked
	uc := newAuthUC(newFakeCompanyRepo(c))

	_, err := uc.LoginAdmin(context.Background(), dto.LoginRequest{Email: "admin@test.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrCompanyBlocked,
		"rol admin y status activo se exigen siempre juntos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Revalidación de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_SesionValida(t *testing.T) {
	uc := newAuthUC(newFakeCompanyRepo(activeCompany(t, "c1", "acme@test.com", "secreta1")))

	out, err := uc.Me(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, out.Role)
	assert.Equal(t, "acme@test.com", out.Company.Email)
}

func TestMe_EmpresaEliminada(t *testing.T) {
	uc := newAuthUC(newFakeCompanyRepo())

	_, err := uc.Me(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_EmpresaBloqueadaEnMedioDeLaSesion(t *testing.T) {
	c := activeCompany(t, "c1", "acme@test.com", "secreta1")
	c.Status = entity.CompanyStatusBlocked
	uc := newAuthUC(newFakeCompanyRepo(c))

	_, err := uc.Me(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrCompanyBlocked)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bootstrap del administrador por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureDefaultAdmin_CreaUnaSolaVez(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := newAuthUC(repo)

	created, err := uc.EnsureDefaultAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, created, "la primera llamada debe crear el admin")

	admin, _ := repo.GetByEmail(context.Background(), "admin@exemplo.com")
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, entity.CompanyStatusActive, admin.Status)
	assert.True(t, strings.HasPrefix(admin.PasswordHash, "$2"),
		"el password por defecto nunca se guarda en claro")

	// Segunda llamada: idempotente, no duplica.
	created, err = uc.EnsureDefaultAdmin(context.Background())
	require.NoError(t, err)
	assert.False(t, created)

	count, _ := repo.CountAdmins(context.Background())
	assert.Equal(t, 1, count)
}

func TestEnsureDefaultAdmin_NoCreaSiHayAdminLegacy(t *testing.T) {
	c := activeCompany(t, "a1", "viejo@test.com", "x")
	c.Plan = entity.LegacyAdminPlanSentinel
	repo := newFakeCompanyRepo(c)
	uc := newAuthUC(repo)

	created, err := uc.EnsureDefaultAdmin(context.Background())
	require.NoError(t, err)
	assert.False(t, created, "un admin legacy existente cuenta para el bootstrap")
}

func TestEnsureDefaultAdmin_LoginConCredencialesPorDefecto(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := newAuthUC(repo)

	_, err := uc.EnsureDefaultAdmin(context.Background())
	require.NoError(t, err)

	out, err := uc.LoginAdmin(context.Background(), dto.LoginRequest{Email: "admin@exemplo.com", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}
