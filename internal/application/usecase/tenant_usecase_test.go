package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del plano de control
// ──────────────────────────────────────────────────────────────────────────────

type memRegistry struct {
	tenants map[string]*entity.Tenant
}

func newMemRegistry() *memRegistry {
	return &memRegistry{tenants: make(map[string]*entity.Tenant)}
}

func (r *memRegistry) Create(_ context.Context, t *entity.Tenant) error {
	for _, existing := range r.tenants {
		if existing.Subdomain == t.Subdomain {
			return domain.ErrDuplicate
		}
	}
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *memRegistry) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memRegistry) GetBySubdomain(_ context.Context, subdomain string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.Subdomain == subdomain {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *memRegistry) List(_ context.Context, _, _ int) ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRegistry) UpdateStatus(_ context.Context, id, status string) error {
	t, ok := r.tenants[id]
	if !ok {
		return domain.ErrTenantNotFound
	}
	t.Status = status
	return nil
}

func (r *memRegistry) MarkProvisioned(_ context.Context, id, schemaName string, at time.Time) error {
	t, ok := r.tenants[id]
	if !ok {
		return domain.ErrTenantNotFound
	}
	t.Provisioned = true
	t.SchemaName = schemaName
	t.ProvisionedAt = &at
	return nil
}

func (r *memRegistry) Delete(_ context.Context, id string) error {
	if _, ok := r.tenants[id]; !ok {
		return domain.ErrTenantNotFound
	}
	delete(r.tenants, id)
	return nil
}

type memProvisioner struct {
	failProvision bool
	provisioned   []string
	deprovisioned []string
}

func (p *memProvisioner) Provision(_ context.Context, tenantID string) (tenancy.SchemaName, error) {
	if p.failProvision {
		return tenancy.SchemaName{}, errors.New("ddl falló")
	}
	p.provisioned = append(p.provisioned, tenantID)
	return tenancy.Derive(tenantID)
}

func (p *memProvisioner) Deprovision(_ context.Context, tenantID string) error {
	p.deprovisioned = append(p.deprovisioned, tenantID)
	return nil
}

type memResolver struct {
	released []string
}

func (r *memResolver) Resolve(_ context.Context, tenantID string) (*repository.TenantHandle, error) {
	return &repository.TenantHandle{TenantID: tenantID}, nil
}
func (r *memResolver) Release(tenantID string) { r.released = append(r.released, tenantID) }
func (r *memResolver) ReleaseAll()             {}

var (
	_ repository.TenantRegistry    = (*memRegistry)(nil)
	_ repository.SchemaProvisioner = (*memProvisioner)(nil)
	_ repository.HandleResolver    = (*memResolver)(nil)
)

func buildTenantUC() (*usecase.TenantUseCase, *memRegistry, *memProvisioner, *memResolver) {
	reg := newMemRegistry()
	prov := &memProvisioner{}
	res := &memResolver{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return usecase.NewTenantUseCase(reg, prov, res, log), reg, prov, res
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El alta deja el tenant en trial, aprovisionado y con esquema registrado.
func TestTenantUseCase_Create_AltaCompleta(t *testing.T) {
	uc, reg, prov, _ := buildTenantUC()

	out, err := uc.Create(context.Background(), dto.CreateTenantRequest{
		Name:      "Acme Fletes",
		Subdomain: "acme",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TenantStatusTrial, out.Status)
	assert.True(t, out.Provisioned)
	assert.NotEmpty(t, out.SchemaName)
	require.Len(t, prov.provisioned, 1)

	stored, err := reg.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, stored.Provisioned)
}

// Subdominio repetido se rechaza sin aprovisionar nada.
func TestTenantUseCase_Create_SubdominioDuplicado(t *testing.T) {
	uc, _, prov, _ := buildTenantUC()
	_, err := uc.Create(context.Background(), dto.CreateTenantRequest{Name: "A", Subdomain: "acme"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateTenantRequest{Name: "B", Subdomain: "acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, prov.provisioned, 1, "el alta rechazada no debe aprovisionar")
}

// Si el DDL falla, el esquema parcial se limpia y la fila queda sin marca de
// aprovisionado.
func TestTenantUseCase_Create_FallaDDLLimpia(t *testing.T) {
	uc, reg, prov, _ := buildTenantUC()
	prov.failProvision = true

	_, err := uc.Create(context.Background(), dto.CreateTenantRequest{Name: "A", Subdomain: "acme"})
	require.Error(t, err)
	assert.Len(t, prov.deprovisioned, 1, "el esquema parcial debe eliminarse")

	list, err := reg.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Provisioned)
}

// Suspender desaloja el handle; reactivar no vuelve a aprovisionar.
func TestTenantUseCase_UpdateStatus_SuspenderDesaloja(t *testing.T) {
	uc, _, prov, res := buildTenantUC()
	created, err := uc.Create(context.Background(), dto.CreateTenantRequest{Name: "A", Subdomain: "acme"})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), created.ID, entity.TenantStatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantStatusSuspended, out.Status)
	assert.Equal(t, []string{created.ID}, res.released)

	reactivated, err := uc.UpdateStatus(context.Background(), created.ID, entity.TenantStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.TenantStatusActive, reactivated.Status)
	assert.True(t, reactivated.Provisioned, "la suspensión no debe tocar los datos")
	assert.Len(t, prov.provisioned, 1)

	_, err = uc.UpdateStatus(context.Background(), created.ID, "demolished")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El re-aprovisionamiento desaloja el handle y reconstruye el esquema; un
// tenant inexistente se rechaza sin ejecutar DDL.
func TestTenantUseCase_Provision_Reconstruye(t *testing.T) {
	uc, _, prov, res := buildTenantUC()
	created, err := uc.Create(context.Background(), dto.CreateTenantRequest{Name: "A", Subdomain: "acme"})
	require.NoError(t, err)

	out, err := uc.Provision(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, out.Provisioned)
	assert.Equal(t, []string{created.ID}, res.released, "el handle viejo debe desalojarse")
	assert.Equal(t, []string{created.ID, created.ID}, prov.provisioned)

	_, err = uc.Provision(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
	assert.Len(t, prov.provisioned, 2)
}

// La baja definitiva sigue el orden handle -> esquema -> fila del registro.
func TestTenantUseCase_Delete_OrdenDeBaja(t *testing.T) {
	uc, reg, prov, res := buildTenantUC()
	created, err := uc.Create(context.Background(), dto.CreateTenantRequest{Name: "A", Subdomain: "acme"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{created.ID}, res.released)
	assert.Equal(t, []string{created.ID}, prov.deprovisioned)

	_, err = reg.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)

	// Baja de un tenant inexistente: not found, sin tocar esquemas.
	err = uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
	assert.Len(t, prov.deprovisioned, 1)
}
