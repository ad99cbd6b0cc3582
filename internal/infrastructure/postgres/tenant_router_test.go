package postgres_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
	"github.com/jhoicas/fletes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del registro y el aprovisionador
// ──────────────────────────────────────────────────────────────────────────────

type fakeRegistry struct {
	mu      sync.Mutex
	tenants map[string]*entity.Tenant
}

func newFakeRegistry(tenants ...*entity.Tenant) *fakeRegistry {
	r := &fakeRegistry{tenants: make(map[string]*entity.Tenant)}
	for _, t := range tenants {
		cp := *t
		r.tenants[t.ID] = &cp
	}
	return r
}

func (r *fakeRegistry) Create(_ context.Context, t *entity.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *fakeRegistry) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenants[id]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRegistry) GetBySubdomain(_ context.Context, subdomain string) (*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tenants {
		if t.Subdomain == subdomain {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *fakeRegistry) List(_ context.Context, _, _ int) ([]*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRegistry) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenants[id]
	if !ok {
		return domain.ErrTenantNotFound
	}
	t.Status = status
	return nil
}

func (r *fakeRegistry) MarkProvisioned(_ context.Context, id, schemaName string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenants[id]
	if !ok {
		return domain.ErrTenantNotFound
	}
	t.Provisioned = true
	t.SchemaName = schemaName
	t.ProvisionedAt = &at
	return nil
}

func (r *fakeRegistry) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tenants[id]; !ok {
		return domain.ErrTenantNotFound
	}
	delete(r.tenants, id)
	return nil
}

type fakeProvisioner struct {
	provisionCalls   atomic.Int64
	deprovisionCalls atomic.Int64
}

func (p *fakeProvisioner) Provision(_ context.Context, tenantID string) (tenancy.SchemaName, error) {
	p.provisionCalls.Add(1)
	return tenancy.Derive(tenantID)
}

func (p *fakeProvisioner) Deprovision(_ context.Context, _ string) error {
	p.deprovisionCalls.Add(1)
	return nil
}

var (
	_ repository.TenantRegistry    = (*fakeRegistry)(nil)
	_ repository.SchemaProvisioner = (*fakeProvisioner)(nil)
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func operationalTenant(id string) *entity.Tenant {
	return &entity.Tenant{
		ID:        id,
		Name:      "Tenant " + id,
		Subdomain: id,
		Status:    entity.TenantStatusActive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un tenant sin aprovisionar se aprovisiona exactamente una vez y la marca
// queda en el registro antes de cachear el handle.
func TestTenantRouter_Resolve_AprovisionaUnaVez(t *testing.T) {
	reg := newFakeRegistry(operationalTenant("acme-1"))
	prov := &fakeProvisioner{}
	router := postgres.NewTenantRouter(nil, reg, prov, testLogger(), 0)

	h, err := router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "tenant_acme_1", h.Schema.String())
	assert.EqualValues(t, 1, prov.provisionCalls.Load(), "debe aprovisionar exactamente una vez")

	stored, err := reg.GetByID(context.Background(), "acme-1")
	require.NoError(t, err)
	assert.True(t, stored.Provisioned, "la marca de aprovisionado debe quedar en el registro")
	assert.Equal(t, "tenant_acme_1", stored.SchemaName)

	// Segunda resolución: handle cacheado, sin nuevo aprovisionamiento.
	h2, err := router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	assert.Same(t, h, h2, "la segunda resolución debe devolver el mismo handle")
	assert.EqualValues(t, 1, prov.provisionCalls.Load())
}

// Un tenant ya marcado como aprovisionado jamás vuelve a pasar por el camino
// destructivo, ni siquiera sin handle cacheado (ej. tras un reinicio).
func TestTenantRouter_Resolve_AprovisionadoNoReaprovisiona(t *testing.T) {
	tn := operationalTenant("acme-1")
	tn.Provisioned = true
	tn.SchemaName = "tenant_acme_1"
	reg := newFakeRegistry(tn)
	prov := &fakeProvisioner{}
	router := postgres.NewTenantRouter(nil, reg, prov, testLogger(), 0)

	h, err := router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	assert.Equal(t, "tenant_acme_1", h.Schema.String())
	assert.EqualValues(t, 0, prov.provisionCalls.Load(), "un tenant aprovisionado no debe disparar DDL")

	// Desalojar el handle simula un reinicio: tampoco debe re-aprovisionar.
	router.Release("acme-1")
	assert.False(t, router.Cached("acme-1"))
	_, err = router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, prov.provisionCalls.Load())
}

// Resoluciones concurrentes para el mismo tenant producen exactamente un
// handle y exactamente un aprovisionamiento.
func TestTenantRouter_Resolve_ConcurrenciaUnSoloHandle(t *testing.T) {
	reg := newFakeRegistry(operationalTenant("acme-1"))
	prov := &fakeProvisioner{}
	router := postgres.NewTenantRouter(nil, reg, prov, testLogger(), 0)

	const goroutines = 32
	handles := make([]*repository.TenantHandle, goroutines)
	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = router.Resolve(context.Background(), "acme-1")
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
	}

	assert.EqualValues(t, 1, prov.provisionCalls.Load(), "N Resolve concurrentes deben aprovisionar una sola vez")
	for i := 1; i < goroutines; i++ {
		assert.Same(t, handles[0], handles[i], "todas las goroutines deben recibir el mismo handle")
	}
}

// Tenants distintos reciben handles atados a esquemas distintos.
func TestTenantRouter_Resolve_EsquemasAisladosPorTenant(t *testing.T) {
	reg := newFakeRegistry(operationalTenant("acme-1"), operationalTenant("other-2"))
	prov := &fakeProvisioner{}
	router := postgres.NewTenantRouter(nil, reg, prov, testLogger(), 0)

	h1, err := router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	h2, err := router.Resolve(context.Background(), "other-2")
	require.NoError(t, err)

	assert.Equal(t, "tenant_acme_1", h1.Schema.String())
	assert.Equal(t, "tenant_other_2", h2.Schema.String())
	assert.NotEqual(t, h1.Schema.String(), h2.Schema.String())
}

// Un tenant suspendido o inactivo no resuelve.
func TestTenantRouter_Resolve_SuspendidoRechazado(t *testing.T) {
	suspended := operationalTenant("acme-1")
	suspended.Status = entity.TenantStatusSuspended
	inactive := operationalTenant("other-2")
	inactive.Status = entity.TenantStatusInactive
	reg := newFakeRegistry(suspended, inactive)
	router := postgres.NewTenantRouter(nil, reg, &fakeProvisioner{}, testLogger(), 0)

	_, err := router.Resolve(context.Background(), "acme-1")
	assert.ErrorIs(t, err, domain.ErrTenantSuspended)
	_, err = router.Resolve(context.Background(), "other-2")
	assert.ErrorIs(t, err, domain.ErrTenantSuspended)
	assert.False(t, router.Cached("acme-1"), "un tenant rechazado no debe quedar cacheado")
}

// Un tenant inexistente devuelve ErrTenantNotFound.
func TestTenantRouter_Resolve_NoExiste(t *testing.T) {
	router := postgres.NewTenantRouter(nil, newFakeRegistry(), &fakeProvisioner{}, testLogger(), 0)
	_, err := router.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

// Un nombre de esquema corrupto en el registro se rechaza en vez de usarse.
func TestTenantRouter_Resolve_EsquemaCorruptoRechazado(t *testing.T) {
	tn := operationalTenant("acme-1")
	tn.Provisioned = true
	tn.SchemaName = "public; DROP SCHEMA admin"
	reg := newFakeRegistry(tn)
	router := postgres.NewTenantRouter(nil, reg, &fakeProvisioner{}, testLogger(), 0)

	_, err := router.Resolve(context.Background(), "acme-1")
	assert.Error(t, err, "un schema_name inválido almacenado debe rechazarse")
}

// ReleaseAll desaloja todos los handles sin afectar el estado del registro.
func TestTenantRouter_ReleaseAll(t *testing.T) {
	reg := newFakeRegistry(operationalTenant("acme-1"), operationalTenant("other-2"))
	prov := &fakeProvisioner{}
	router := postgres.NewTenantRouter(nil, reg, prov, testLogger(), 0)

	_, err := router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	_, err = router.Resolve(context.Background(), "other-2")
	require.NoError(t, err)
	require.True(t, router.Cached("acme-1"))
	require.True(t, router.Cached("other-2"))

	router.ReleaseAll()
	assert.False(t, router.Cached("acme-1"))
	assert.False(t, router.Cached("other-2"))

	// Los tenants siguen aprovisionados: re-resolver no dispara DDL.
	_, err = router.Resolve(context.Background(), "acme-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, prov.provisionCalls.Load())
}
