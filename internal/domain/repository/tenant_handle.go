package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
)

// TenantHandle agrupa los stores de un tenant, todos atados al mismo esquema
// validado en el momento de la construcción. Ninguna operación de los stores
// acepta un parámetro de tenant: el binding ocurre una sola vez aquí, así un
// llamador no puede cruzar tenants por olvidar pasar el correcto.
type TenantHandle struct {
	TenantID string
	Schema   tenancy.SchemaName

	Companies  CompanyStore
	Drivers    DriverStore
	Weeklies   WeeklyProcessingStore
	Payments   PaymentStore
	Balances   CompanyBalanceStore
	Orders     TransportOrderStore
	Trips      HistoricalTripStore
	Sequence   OrderSequenceStore
}

// HandleResolver define el puerto del router de conexiones por tenant.
type HandleResolver interface {
	// Resolve devuelve el handle cacheado del tenant o lo construye. Para un
	// tenant ya aprovisionado nunca ejecuta DDL; para uno sin aprovisionar
	// dispara el aprovisionamiento exactamente una vez.
	Resolve(ctx context.Context, tenantID string) (*TenantHandle, error)
	// Release desaloja el handle del tenant (baja administrativa).
	Release(tenantID string)
	// ReleaseAll desaloja todos los handles (apagado del proceso).
	ReleaseAll()
}
