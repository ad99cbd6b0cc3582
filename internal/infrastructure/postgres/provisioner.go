package postgres

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// Asegura que Provisioner implementa repository.SchemaProvisioner.
var _ repository.SchemaProvisioner = (*Provisioner)(nil)

// Provisioner crea y destruye esquemas de tenant. Provision es destructivo por
// política de "fresh start": primero elimina cualquier esquema previo del
// mismo nombre derivado, por eso la transición de aprovisionamiento debe
// guardarse en el registro de tenants y ejecutarse una sola vez por tenant.
type Provisioner struct {
	pool          *pgxpool.Pool
	log           *logger.Logger
	seedCompanies int
}

// NewProvisioner construye el aprovisionador sobre el pool compartido.
func NewProvisioner(pool *pgxpool.Pool, log *logger.Logger, seedCompanies int) *Provisioner {
	if seedCompanies <= 0 || seedCompanies > len(defaultCompanies) {
		seedCompanies = len(defaultCompanies)
	}
	return &Provisioner{pool: pool, log: log, seedCompanies: seedCompanies}
}

// Provision deriva el esquema del tenant, lo reconstruye desde cero (drop +
// create), crea todas las tablas en orden de dependencias y siembra los datos
// por defecto. Cualquier fallo a mitad es fatal para la activación del tenant:
// el esquema puede quedar parcial y el llamador debe reintentar el
// aprovisionamiento completo, nunca reanudar.
func (p *Provisioner) Provision(ctx context.Context, tenantID string) (tenancy.SchemaName, error) {
	schema, err := tenancy.Derive(tenantID)
	if err != nil {
		return tenancy.SchemaName{}, err
	}

	log := p.log.ForTenant(tenantID)
	log.Info().Str("schema", schema.String()).Msg("aprovisionando esquema de tenant")

	// Política fresh start: una colisión de nombre se resuelve con el drop,
	// no se trata como error.
	if _, err := p.pool.Exec(ctx, "DROP SCHEMA IF EXISTS "+schema.String()+" CASCADE"); err != nil {
		return tenancy.SchemaName{}, fmt.Errorf("drop esquema %s: %w", schema.String(), err)
	}
	if _, err := p.pool.Exec(ctx, "CREATE SCHEMA "+schema.String()); err != nil {
		return tenancy.SchemaName{}, fmt.Errorf("crear esquema %s: %w", schema.String(), err)
	}

	for _, t := range tenantTables {
		ddl := strings.ReplaceAll(t.ddl, "{schema}", schema.String())
		if _, err := p.pool.Exec(ctx, ddl); err != nil {
			return tenancy.SchemaName{}, fmt.Errorf("crear tabla %s.%s: %w", schema.String(), t.name, err)
		}
	}

	if err := p.seed(ctx, schema); err != nil {
		return tenancy.SchemaName{}, err
	}

	log.Info().Str("schema", schema.String()).Int("tablas", len(tenantTables)).Msg("esquema de tenant listo")
	return schema, nil
}

// Deprovision elimina el esquema del tenant con todos sus datos. Irreversible.
func (p *Provisioner) Deprovision(ctx context.Context, tenantID string) error {
	schema, err := tenancy.Derive(tenantID)
	if err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, "DROP SCHEMA IF EXISTS "+schema.String()+" CASCADE"); err != nil {
		return fmt.Errorf("drop esquema %s: %w", schema.String(), err)
	}
	p.log.ForTenant(tenantID).Info().Str("schema", schema.String()).Msg("esquema de tenant eliminado")
	return nil
}

// seed siembra el secuencial de órdenes con desplazamiento aleatorio (evita
// colisiones de números de orden entre tenants en reportes consolidados) y
// las empresas de referencia.
func (p *Provisioner) seed(ctx context.Context, schema tenancy.SchemaName) error {
	start := int64(10000 + rand.Intn(90000))
	if _, err := p.pool.Exec(ctx,
		"INSERT INTO "+schema.Table("order_sequence")+" (id, current_value, updated_at) VALUES (1, $1, $2)",
		start, time.Now(),
	); err != nil {
		return fmt.Errorf("sembrar order_sequence: %w", err)
	}

	now := time.Now()
	for _, c := range defaultCompanies[:p.seedCompanies] {
		if _, err := p.pool.Exec(ctx,
			"INSERT INTO "+schema.Table("companies")+
				" (id, name, nit, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)",
			uuid.New().String(), c.Name, c.NIT, now, now,
		); err != nil {
			return fmt.Errorf("sembrar empresa %s: %w", c.NIT, err)
		}
	}
	return nil
}

// VerifyProvisioned comprueba que todas las tablas requeridas existen en el
// esquema; útil tras un reinicio para detectar aprovisionamientos parciales.
func (p *Provisioner) VerifyProvisioned(ctx context.Context, schema tenancy.SchemaName) error {
	const q = `
		SELECT COUNT(*) FROM information_schema.tables
		 WHERE table_schema = $1`
	var count int
	if err := p.pool.QueryRow(ctx, q, schema.String()).Scan(&count); err != nil {
		return fmt.Errorf("verificar esquema %s: %w", schema.String(), err)
	}
	if count < len(tenantTables) {
		return fmt.Errorf("esquema %s con %d de %d tablas: %w",
			schema.String(), count, len(tenantTables), domain.ErrNotProvisioned)
	}
	return nil
}
