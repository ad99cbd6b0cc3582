package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// TenantRegistry define el puerto del plano de control de tenants (DIP).
// Vive siempre en el esquema compartido admin, nunca dentro de un esquema de
// tenant. La implementación vive en infrastructure.
type TenantRegistry interface {
	Create(ctx context.Context, t *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// MarkProvisioned registra la transición única de aprovisionamiento.
	// El estado "aprovisionado" vive aquí, no en cachés en memoria: tras un
	// reinicio del proceso la resolución consulta este flag y jamás vuelve a
	// ejecutar el camino destructivo de drop-and-recreate.
	MarkProvisioned(ctx context.Context, id, schemaName string, at time.Time) error
	// Delete elimina la fila del registro. Debe invocarse solo después de
	// eliminar el esquema del tenant: un crash a mitad deja una fila huérfana
	// inofensiva, nunca un esquema sin dueño.
	Delete(ctx context.Context, id string) error
}
