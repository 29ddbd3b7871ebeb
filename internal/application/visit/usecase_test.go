package visit_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portaria-api/internal/application/dto"
	"github.com/jhoicas/portaria-api/internal/application/visit"
	"github.com/jhoicas/portaria-api/internal/domain"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los repositorios del agregado
// ──────────────────────────────────────────────────────────────────────────────

type fakeVisitRepo struct {
	visits map[string]*entity.Visit
}

func (r *fakeVisitRepo) Create(_ context.Context, v *entity.Visit) error {
	cp := *v
	r.visits[v.ID] = &cp
	return nil
}

func (r *fakeVisitRepo) GetByID(_ context.Context, id string) (*entity.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVisitRepo) SetCheckedOut(_ context.Context, id, status string) (int64, error) {
	v, ok := r.visits[id]
	if !ok || v.Status != entity.VisitStatusActive {
		return 0, nil
	}
	now := time.Now()
	v.Status = status
	v.ExitTime = &now
	return 1, nil
}

func (r *fakeVisitRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Visit, error) {
	var out []*entity.Visit
	for _, v := range r.visits {
		if v.CompanyID == companyID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeVisitRepo) ListActiveByCompany(_ context.Context, companyID string) ([]*entity.Visit, error) {
	var out []*entity.Visit
	for _, v := range r.visits {
		if v.CompanyID == companyID && v.Status == entity.VisitStatusActive {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCompanionRepo struct {
	byVisit map[string][]*entity.Companion
}

func (r *fakeCompanionRepo) CreateBatch(_ context.Context, companions []*entity.Companion) error {
	for _, c := range companions {
		cp := *c
		r.byVisit[c.VisitID] = append(r.byVisit[c.VisitID], &cp)
	}
	return nil
}

func (r *fakeCompanionRepo) ListByVisit(_ context.Context, visitID string) ([]*entity.Companion, error) {
	return r.byVisit[visitID], nil
}

type fakeBadgeRepo struct {
	byVisit map[string]*entity.Badge
	codes   map[string]bool
}

func (r *fakeBadgeRepo) Create(_ context.Context, b *entity.Badge) error {
	if r.codes[b.Code] {
		return domain.ErrDuplicate
	}
	cp := *b
	r.byVisit[b.VisitID] = &cp
	r.codes[b.Code] = true
	return nil
}

func (r *fakeBadgeRepo) GetByVisit(_ context.Context, visitID string) (*entity.Badge, error) {
	b, ok := r.byVisit[visitID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBadgeRepo) DeactivateByVisit(_ context.Context, visitID string) error {
	if b, ok := r.byVisit[visitID]; ok {
		b.IsActive = false
	}
	return nil
}

type fakeVisitorRepo struct {
	visitors map[string]*entity.Visitor
}

func (r *fakeVisitorRepo) Create(_ context.Context, v *entity.Visitor) error {
	r.visitors[v.ID] = v
	return nil
}
func (r *fakeVisitorRepo) GetByID(_ context.Context, id string) (*entity.Visitor, error) {
	return r.visitors[id], nil
}
func (r *fakeVisitorRepo) Update(_ context.Context, _ *entity.Visitor) error { return nil }
func (r *fakeVisitorRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Visitor, error) {
	return nil, nil
}
func (r *fakeVisitorRepo) Delete(_ context.Context, _ string) error { return nil }
func (r *fakeVisitorRepo) CountByCompany(_ context.Context, _ string) (int, error) {
	return len(r.visitors), nil
}

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.rooms[room.ID] = room
	return nil
}
func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (*entity.Room, error) {
	return r.rooms[id], nil
}
func (r *fakeRoomRepo) Update(_ context.Context, _ *entity.Room) error { return nil }
func (r *fakeRoomRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Room, error) {
	return nil, nil
}
func (r *fakeRoomRepo) Delete(_ context.Context, _ string) error { return nil }
func (r *fakeRoomRepo) CountByCompany(_ context.Context, _ string) (int, error) {
	return len(r.rooms), nil
}

// fakeTxRunner ejecuta el callback con los mismos fakes, sin transacción real.
// Si fn falla, descarta los cambios no es posible aquí; los tests de rollback
// verifican solo que el error se propaga.
type fakeTxRunner struct {
	visitRepo     repository.VisitRepository
	companionRepo repository.CompanionRepository
	badgeRepo     repository.BadgeRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.VisitRepository,
	repository.CompanionRepository,
	repository.BadgeRepository,
) error) error {
	return fn(r.visitRepo, r.companionRepo, r.badgeRepo)
}

type fakeCache struct {
	entries     map[string][]byte
	invalidated []string
}

func (c *fakeCache) Get(_ context.Context, companyID string) ([]byte, bool) {
	payload, ok := c.entries[companyID]
	return payload, ok
}
func (c *fakeCache) Set(_ context.Context, companyID string, payload []byte) {
	c.entries[companyID] = payload
}
func (c *fakeCache) Invalidate(_ context.Context, companyID string) {
	delete(c.entries, companyID)
	c.invalidated = append(c.invalidated, companyID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
)

type fixture struct {
	uc         *visit.VisitUseCase
	visits     *fakeVisitRepo
	companions *fakeCompanionRepo
	badges     *fakeBadgeRepo
	cache      *fakeCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	visits := &fakeVisitRepo{visits: map[string]*entity.Visit{}}
	companions := &fakeCompanionRepo{byVisit: map[string][]*entity.Companion{}}
	badges := &fakeBadgeRepo{byVisit: map[string]*entity.Badge{}, codes: map[string]bool{}}
	visitors := &fakeVisitorRepo{visitors: map[string]*entity.Visitor{
		"vis-1": {ID: "vis-1", Name: "João Silva", Document: "12345", CompanyID: companyA},
		"vis-b": {ID: "vis-b", Name: "Otro", Document: "99999", CompanyID: companyB},
	}}
	rooms := &fakeRoomRepo{rooms: map[string]*entity.Room{
		"room-1": {ID: "room-1", Name: "Sala de Reuniones", Floor: "2", CompanyID: companyA},
		"room-b": {ID: "room-b", Name: "Ajena", Floor: "1", CompanyID: companyB},
	}}
	tx := &fakeTxRunner{visitRepo: visits, companionRepo: companions, badgeRepo: badges}
	cache := &fakeCache{entries: map[string][]byte{}}
	uc := visit.NewVisitUseCase(visits, companions, badges, visitors, rooms, tx, cache)
	return &fixture{uc: uc, visits: visits, companions: companions, badges: badges, cache: cache}
}

func createRequest() dto.CreateVisitRequest {
	return dto.CreateVisitRequest{
		VisitorID:   "vis-1",
		RoomID:      "room-1",
		Responsible: "Portero Juan",
		BadgeCode:   "V12345",
		Companions: []dto.CompanionInput{
			{Name: "Ana", Document: "111"},
			{Name: "Luis", Document: "222"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación del agregado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AgregadoCompleto(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	assert.Equal(t, entity.VisitStatusActive, out.Status)
	assert.Nil(t, out.ExitTime, "una visita recién creada no tiene hora de salida")
	assert.Equal(t, companyA, out.CompanyID)
	assert.Len(t, out.Companions, 2)
	require.NotNil(t, out.Badge)
	assert.Equal(t, "V12345", out.Badge.Code)
	assert.True(t, out.Badge.IsActive)
	require.NotNil(t, out.Visitor)
	assert.Equal(t, "João Silva", out.Visitor.Name)

	// Todo quedó persistido: visita, acompañantes y crachá.
	stored, _ := f.visits.GetByID(context.Background(), out.ID)
	require.NotNil(t, stored)
	persisted, _ := f.companions.ListByVisit(context.Background(), out.ID)
	assert.Len(t, persisted, 2)
	badge, _ := f.badges.GetByVisit(context.Background(), out.ID)
	require.NotNil(t, badge)
}

func TestCreate_VisitanteInexistente(t *testing.T) {
	f := newFixture(t)
	in := createRequest()
	in.VisitorID = "no-existe"

	_, err := f.uc.Create(context.Background(), in, companyA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	f := newFixture(t)
	in := createRequest()
	in.Responsible = ""

	_, err := f.uc.Create(context.Background(), in, companyA)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_AcompananteSinDocumento(t *testing.T) {
	f := newFixture(t)
	in := createRequest()
	in.Companions = []dto.CompanionInput{{Name: "Ana", Document: ""}}

	_, err := f.uc.Create(context.Background(), in, companyA)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_VisitanteDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	in := createRequest()
	in.VisitorID = "vis-b" // pertenece a companyB

	_, err := f.uc.Create(context.Background(), in, companyA)
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

func TestCreate_SalaDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	in := createRequest()
	in.RoomID = "room-b"

	_, err := f.uc.Create(context.Background(), in, companyA)
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

func TestCreate_InvalidaCacheDeActivas(t *testing.T) {
	f := newFixture(t)
	f.cache.entries[companyA] = []byte(`[]`)

	_, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)
	assert.Contains(t, f.cache.invalidated, companyA)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout y cancelación
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CierraVisitaYDesactivaCracha(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	require.NoError(t, f.uc.Checkout(context.Background(), out.ID, companyA))

	v, _ := f.visits.GetByID(context.Background(), out.ID)
	assert.Equal(t, entity.VisitStatusCompleted, v.Status)
	require.NotNil(t, v.ExitTime, "status y exit_time cambian juntos")

	badge, _ := f.badges.GetByVisit(context.Background(), out.ID)
	assert.False(t, badge.IsActive, "el checkout desactiva el crachá")
}

func TestCheckout_EsDeUnaSolaVia(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	require.NoError(t, f.uc.Checkout(context.Background(), out.ID, companyA))
	err = f.uc.Checkout(context.Background(), out.ID, companyA)
	assert.ErrorIs(t, err, domain.ErrVisitNotActive,
		"el segundo checkout no debe volver a cerrar la visita")
}

func TestCheckout_VisitaDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	err = f.uc.Checkout(context.Background(), out.ID, companyB)
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)

	v, _ := f.visits.GetByID(context.Background(), out.ID)
	assert.Equal(t, entity.VisitStatusActive, v.Status, "la visita sigue activa")
}

func TestCancel_DejaEstadoCancelled(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	require.NoError(t, f.uc.Cancel(context.Background(), out.ID, companyA))

	v, _ := f.visits.GetByID(context.Background(), out.ID)
	assert.Equal(t, entity.VisitStatusCancelled, v.Status)
	assert.NotNil(t, v.ExitTime)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y aislamiento por empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_TenantAjenoRespondeNotFound(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	_, err = f.uc.GetByID(context.Background(), out.ID, companyB)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una visita de otra empresa responde igual que una inexistente")
}

func TestListActive_SoloVisitasActivasDeLaEmpresa(t *testing.T) {
	f := newFixture(t)
	first, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)
	in := createRequest()
	in.BadgeCode = "V54321"
	second, err := f.uc.Create(context.Background(), in, companyA)
	require.NoError(t, err)

	require.NoError(t, f.uc.Checkout(context.Background(), first.ID, companyA))

	active, err := f.uc.ListActive(context.Background(), companyA)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	other, err := f.uc.ListActive(context.Background(), companyB)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListActive_UsaElCache(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	// Primera lectura llena el caché.
	first, err := f.uc.ListActive(context.Background(), companyA)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Contains(t, f.cache.entries, companyA)

	// Segunda lectura sirve desde el caché.
	second, err := f.uc.ListActive(context.Background(), companyA)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: registro → activas → checkout → activas
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_RegistroYCheckout(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(context.Background(), createRequest(), companyA)
	require.NoError(t, err)

	active, err := f.uc.ListActive(context.Background(), companyA)
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, f.uc.Checkout(context.Background(), out.ID, companyA))

	active, err = f.uc.ListActive(context.Background(), companyA)
	require.NoError(t, err)
	assert.Empty(t, active, "tras el checkout no quedan visitas activas")

	detail, err := f.uc.GetByID(context.Background(), out.ID, companyA)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCompleted, detail.Status)
	assert.NotNil(t, detail.ExitTime)
	assert.False(t, detail.Badge.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Código de crachá
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateBadgeCode_Formato(t *testing.T) {
	pattern := regexp.MustCompile(`^V\d{5}$`)
	for i := 0; i < 100; i++ {
		code := visit.GenerateBadgeCode()
		assert.Regexp(t, pattern, code)
	}
}
