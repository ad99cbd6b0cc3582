package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
)

// Asegura que RegistryRepo implementa repository.TenantRegistry.
var _ repository.TenantRegistry = (*RegistryRepo)(nil)

// registryDDL tabla del plano de control en el esquema compartido admin.
// Nunca vive dentro de un esquema de tenant.
const registryDDL = `
	CREATE TABLE IF NOT EXISTS %s.tenants (
		id UUID PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		subdomain VARCHAR(63) UNIQUE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'trial',
		contact_email VARCHAR(255) NOT NULL DEFAULT '',
		contact_phone VARCHAR(50) NOT NULL DEFAULT '',
		plan VARCHAR(50) NOT NULL DEFAULT 'basic',
		schema_name VARCHAR(63) NOT NULL DEFAULT '',
		provisioned BOOLEAN NOT NULL DEFAULT FALSE,
		provisioned_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

const registryColumns = `id, name, subdomain, status, contact_email, contact_phone,
	plan, schema_name, provisioned, provisioned_at, created_at, updated_at`

// RegistryRepo implementación del registro de tenants sobre PostgreSQL.
// adminSchema es fijo y proviene de configuración, no de entrada de usuario.
type RegistryRepo struct {
	pool        *pgxpool.Pool
	adminSchema string
}

// NewRegistryRepo construye el adaptador del plano de control.
func NewRegistryRepo(pool *pgxpool.Pool, adminSchema string) *RegistryRepo {
	if adminSchema == "" {
		adminSchema = "admin"
	}
	return &RegistryRepo{pool: pool, adminSchema: adminSchema}
}

// EnsureSchema crea el esquema admin y la tabla tenants si no existen
// (bootstrap en el arranque del proceso).
func (r *RegistryRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+r.adminSchema); err != nil {
		return fmt.Errorf("crear esquema %s: %w", r.adminSchema, err)
	}
	if _, err := r.pool.Exec(ctx, fmt.Sprintf(registryDDL, r.adminSchema)); err != nil {
		return fmt.Errorf("crear tabla %s.tenants: %w", r.adminSchema, err)
	}
	return nil
}

func (r *RegistryRepo) table() string {
	return r.adminSchema + ".tenants"
}

// Create registra un tenant nuevo (sin aprovisionar todavía).
func (r *RegistryRepo) Create(ctx context.Context, t *entity.Tenant) error {
	query := `
		INSERT INTO ` + r.table() + ` (` + registryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Subdomain, t.Status, t.ContactEmail, t.ContactPhone,
		t.Plan, t.SchemaName, t.Provisioned, t.ProvisionedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID. Devuelve domain.ErrTenantNotFound si no existe.
func (r *RegistryRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	query := `SELECT ` + registryColumns + ` FROM ` + r.table() + ` WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

// GetBySubdomain obtiene un tenant por su slug de subdominio.
func (r *RegistryRepo) GetBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	query := `SELECT ` + registryColumns + ` FROM ` + r.table() + ` WHERE subdomain = $1`
	return r.queryOne(ctx, query, subdomain)
}

// List devuelve tenants con paginación (panel administrativo).
func (r *RegistryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	query := `SELECT ` + registryColumns + ` FROM ` + r.table() + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de ciclo de vida. Solo plano de control: no
// toca los datos operativos del tenant.
func (r *RegistryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidTenantStatus(status) {
		return fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	cmd, err := r.pool.Exec(ctx,
		`UPDATE `+r.table()+` SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

// MarkProvisioned registra la transición única de aprovisionamiento.
func (r *RegistryRepo) MarkProvisioned(ctx context.Context, id, schemaName string, at time.Time) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE `+r.table()+`
		    SET provisioned = TRUE, schema_name = $2, provisioned_at = $3, updated_at = NOW()
		  WHERE id = $1`,
		id, schemaName, at,
	)
	if err != nil {
		return fmt.Errorf("marcar aprovisionado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

// Delete elimina la fila del registro. El orden correcto es responsabilidad
// del caso de uso: primero el esquema, después esta fila.
func (r *RegistryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM `+r.table()+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *RegistryRepo) queryOne(ctx context.Context, query string, arg any) (*entity.Tenant, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	t, err := scanTenant(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

func scanTenant(scan func(dest ...any) error) (*entity.Tenant, error) {
	var t entity.Tenant
	if err := scan(
		&t.ID, &t.Name, &t.Subdomain, &t.Status, &t.ContactEmail, &t.ContactPhone,
		&t.Plan, &t.SchemaName, &t.Provisioned, &t.ProvisionedAt, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
