package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
)

// SchemaProvisioner define el puerto de aprovisionamiento de esquemas.
//
// Provision es deliberadamente destructivo: elimina cualquier esquema previo
// del mismo nombre derivado y lo reconstruye desde cero con las tablas y los
// datos semilla. Los llamadores deben tratarlo como una transición que ocurre
// exactamente una vez en el ciclo de vida del tenant (guardada por el flag
// provisioned del registro), jamás como parte de la resolución de handles.
type SchemaProvisioner interface {
	Provision(ctx context.Context, tenantID string) (tenancy.SchemaName, error)
	// Deprovision elimina el esquema del tenant con todos sus datos (irreversible).
	Deprovision(ctx context.Context, tenantID string) error
}
