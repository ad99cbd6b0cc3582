package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// Asegura que TenantRouter implementa repository.HandleResolver.
var _ repository.HandleResolver = (*TenantRouter)(nil)

// TenantRouter resuelve tenantID -> handle atado a su esquema, cacheando
// handles en memoria. El caché es solo una optimización: el estado
// "aprovisionado" vive en el registro de tenants, nunca se infiere de la
// ausencia de un handle. Así, tras un reinicio del proceso, resolver un
// tenant ya aprovisionado reconstruye el handle sin ejecutar DDL: el camino
// destructivo de drop-and-recreate es inalcanzable desde Resolve.
type TenantRouter struct {
	pool        *pgxpool.Pool
	registry    repository.TenantRegistry
	provisioner repository.SchemaProvisioner
	log         *logger.Logger
	timeout     time.Duration

	mu      sync.Mutex
	handles map[string]*repository.TenantHandle
}

// NewTenantRouter construye el router con dependencias explícitas; sin estado
// global de paquete, el ciclo de vida (Resolve/Release/ReleaseAll) es testeable.
func NewTenantRouter(
	pool *pgxpool.Pool,
	registry repository.TenantRegistry,
	provisioner repository.SchemaProvisioner,
	log *logger.Logger,
	statementTimeout time.Duration,
) *TenantRouter {
	return &TenantRouter{
		pool:        pool,
		registry:    registry,
		provisioner: provisioner,
		log:         log,
		timeout:     statementTimeout,
		handles:     make(map[string]*repository.TenantHandle),
	}
}

// Resolve devuelve el handle del tenant. El mutex cubre todo el camino de
// construcción: dos Resolve concurrentes para el mismo tenant producen
// exactamente un handle cacheado.
func (r *TenantRouter) Resolve(ctx context.Context, tenantID string) (*repository.TenantHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.handles[tenantID]; ok {
		return h, nil
	}

	t, err := r.registry.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !t.Operational() {
		return nil, fmt.Errorf("tenant %s en estado %s: %w", tenantID, t.Status, domain.ErrTenantSuspended)
	}

	var schema tenancy.SchemaName
	if t.Provisioned {
		// Ya aprovisionado: solo re-validar el nombre almacenado; ningún DDL.
		schema, err = tenancy.Parse(t.SchemaName)
		if err != nil {
			return nil, err
		}
	} else {
		// Aprovisionamiento perezoso, exactamente una vez: se registra en el
		// plano de control antes de cachear el handle.
		schema, err = r.provisioner.Provision(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProvisioningFailed, err)
		}
		if err := r.registry.MarkProvisioned(ctx, tenantID, schema.String(), time.Now()); err != nil {
			return nil, fmt.Errorf("registrar aprovisionamiento de %s: %w", tenantID, err)
		}
		r.log.ForTenant(tenantID).Info().Str("schema", schema.String()).Msg("tenant aprovisionado perezosamente")
	}

	h := r.newHandle(tenantID, schema)
	r.handles[tenantID] = h
	return h, nil
}

// Release desaloja el handle del tenant (baja administrativa). Las conexiones
// físicas pertenecen al pool compartido y no se cierran aquí.
func (r *TenantRouter) Release(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handles, tenantID)
}

// ReleaseAll desaloja todos los handles (apagado del proceso). El cierre del
// pool compartido es responsabilidad de quien lo creó.
func (r *TenantRouter) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles = make(map[string]*repository.TenantHandle)
}

// Cached informa si existe un handle cacheado (solo para inspección/tests).
func (r *TenantRouter) Cached(tenantID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handles[tenantID]
	return ok
}

// newHandle ata todos los stores al esquema validado. El binding ocurre una
// sola vez; ninguna operación posterior acepta un tenant.
func (r *TenantRouter) newHandle(tenantID string, schema tenancy.SchemaName) *repository.TenantHandle {
	return &repository.TenantHandle{
		TenantID:  tenantID,
		Schema:    schema,
		Companies: NewCompanyStore(r.pool, schema, r.timeout),
		Drivers:   NewDriverStore(r.pool, schema, r.timeout),
		Weeklies:  NewWeeklyProcessingStore(r.pool, schema, r.timeout),
		Payments:  NewPaymentStore(r.pool, schema, r.timeout),
		Balances:  NewCompanyBalanceStore(r.pool, schema, r.timeout),
		Orders:    NewTransportOrderStore(r.pool, schema, r.timeout),
		Trips:     NewHistoricalTripStore(r.pool, schema, r.timeout),
		Sequence:  NewOrderSequenceStore(r.pool, schema, r.timeout),
	}
}
