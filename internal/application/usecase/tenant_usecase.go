package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// TenantUseCase casos de uso del plano de control de tenants: alta con
// aprovisionamiento, transiciones de estado y baja con eliminación de esquema.
type TenantUseCase struct {
	registry    repository.TenantRegistry
	provisioner repository.SchemaProvisioner
	resolver    repository.HandleResolver
	log         *logger.Logger
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(registry repository.TenantRegistry, provisioner repository.SchemaProvisioner, resolver repository.HandleResolver, log *logger.Logger) *TenantUseCase {
	return &TenantUseCase{registry: registry, provisioner: provisioner, resolver: resolver, log: log}
}

// Create da de alta un tenant: fila en el registro, aprovisionamiento del
// esquema y marca de aprovisionado. Si el aprovisionamiento falla, la fila
// queda con provisioned=false y el esquema parcial se elimina; un reintento
// de resolución vuelve a aprovisionar desde cero.
func (uc *TenantUseCase) Create(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	existing, err := uc.registry.GetBySubdomain(ctx, in.Subdomain)
	if err != nil && !errors.Is(err, domain.ErrTenantNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	t := &entity.Tenant{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Subdomain:    in.Subdomain,
		Status:       entity.TenantStatusTrial,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Plan:         in.Plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.registry.Create(ctx, t); err != nil {
		return nil, err
	}

	schema, err := uc.provisioner.Provision(ctx, t.ID)
	if err != nil {
		uc.log.Error().Err(err).Str("tenant_id", t.ID).Msg("aprovisionamiento falló en el alta")
		if derr := uc.provisioner.Deprovision(ctx, t.ID); derr != nil {
			uc.log.Error().Err(derr).Str("tenant_id", t.ID).Msg("limpieza de esquema parcial falló")
		}
		return nil, fmt.Errorf("provisionar tenant: %w", err)
	}
	if err := uc.registry.MarkProvisioned(ctx, t.ID, schema.String(), time.Now()); err != nil {
		return nil, err
	}

	created, err := uc.registry.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("tenant_id", t.ID).Str("schema", schema.String()).Msg("tenant aprovisionado")
	return toTenantResponse(created), nil
}

// GetByID obtiene un tenant por ID.
func (uc *TenantUseCase) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	t, err := uc.registry.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// GetBySubdomain obtiene un tenant por su subdominio.
func (uc *TenantUseCase) GetBySubdomain(ctx context.Context, subdomain string) (*dto.TenantResponse, error) {
	t, err := uc.registry.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// List lista tenants con paginación.
func (uc *TenantUseCase) List(ctx context.Context, limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.registry.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus aplica una transición de estado. Al salir de operación se
// desaloja el handle para que el siguiente acceso vea el estado nuevo.
func (uc *TenantUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.TenantResponse, error) {
	if !entity.ValidTenantStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.registry.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if status == entity.TenantStatusSuspended || status == entity.TenantStatusInactive {
		uc.resolver.Release(id)
	}
	t, err := uc.registry.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// Provision reconstruye el esquema del tenant desde cero. Es la única vía
// administrativa al camino destructivo: elimina todos los datos del tenant y
// vuelve a crear tablas y semillas. El handle cacheado se desaloja para que la
// próxima resolución vea el esquema nuevo.
func (uc *TenantUseCase) Provision(ctx context.Context, id string) (*dto.TenantResponse, error) {
	if _, err := uc.registry.GetByID(ctx, id); err != nil {
		return nil, err
	}
	uc.resolver.Release(id)
	schema, err := uc.provisioner.Provision(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("provisionar tenant: %w", err)
	}
	if err := uc.registry.MarkProvisioned(ctx, id, schema.String(), time.Now()); err != nil {
		return nil, err
	}
	uc.log.Warn().Str("tenant_id", id).Str("schema", schema.String()).Msg("tenant re-aprovisionado, datos previos eliminados")
	t, err := uc.registry.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// Delete elimina un tenant de forma irreversible: desaloja el handle, elimina
// el esquema con todos sus datos y por último la fila del registro. El orden
// importa: un crash a mitad deja una fila huérfana, nunca un esquema sin dueño.
func (uc *TenantUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.registry.GetByID(ctx, id); err != nil {
		return err
	}
	uc.resolver.Release(id)
	if err := uc.provisioner.Deprovision(ctx, id); err != nil {
		return fmt.Errorf("eliminar esquema del tenant: %w", err)
	}
	if err := uc.registry.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("tenant_id", id).Msg("tenant eliminado")
	return nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:            t.ID,
		Name:          t.Name,
		Subdomain:     t.Subdomain,
		Status:        t.Status,
		ContactEmail:  t.ContactEmail,
		ContactPhone:  t.ContactPhone,
		Plan:          t.Plan,
		SchemaName:    t.SchemaName,
		Provisioned:   t.Provisioned,
		ProvisionedAt: t.ProvisionedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
