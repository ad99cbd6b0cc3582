package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
)

// Asegura que CompanyStore implementa repository.CompanyStore.
var _ repository.CompanyStore = (*CompanyStore)(nil)

// CompanyStore adaptador de persistencia para empresas, atado a un esquema de
// tenant en la construcción. Cada sentencia califica totalmente sus tablas
// (estrategia de identificadores calificados): no hay estado de conexión que
// un pool pueda filtrar entre tenants.
type CompanyStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewCompanyStore construye el store atado al esquema validado.
func NewCompanyStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *CompanyStore {
	return &CompanyStore{pool: pool, schema: schema, timeout: timeout}
}

const companyColumns = `id, name, nit, contact_name, phone, email, address,
	commission_rate, status, created_at, updated_at`

// Create persiste una nueva empresa en el esquema del tenant.
func (s *CompanyStore) Create(ctx context.Context, c *entity.Company) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `INSERT INTO ` + s.schema.Table("companies") + ` (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.pool.Exec(ctx, query,
		c.ID, c.Name, c.NIT, c.ContactName, c.Phone, c.Email, c.Address,
		c.CommissionRate, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (s *CompanyStore) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM ` + s.schema.Table("companies") + ` WHERE id = $1`
	return s.queryOne(ctx, query, id)
}

// GetByNIT obtiene una empresa por su clave natural (NIT).
func (s *CompanyStore) GetByNIT(ctx context.Context, nit string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM ` + s.schema.Table("companies") + ` WHERE nit = $1`
	return s.queryOne(ctx, query, nit)
}

// List devuelve empresas del tenant con paginación.
func (s *CompanyStore) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT ` + companyColumns + ` FROM ` + s.schema.Table("companies") + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.NIT, &c.ContactName, &c.Phone, &c.Email, &c.Address,
			&c.CommissionRate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa. Cero filas afectadas se reporta como
// domain.ErrNoRowsAffected: referencia obsoleta del llamador.
func (s *CompanyStore) Update(ctx context.Context, c *entity.Company) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `UPDATE ` + s.schema.Table("companies") + `
		SET name = $2, nit = $3, contact_name = $4, phone = $5, email = $6,
		    address = $7, commission_rate = $8, status = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := s.pool.Exec(ctx, query,
		c.ID, c.Name, c.NIT, c.ContactName, c.Phone, c.Email,
		c.Address, c.CommissionRate, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

// Delete elimina una empresa por ID. Un delete que no borra nada no retorna
// éxito silencioso: sube domain.ErrNoRowsAffected.
func (s *CompanyStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM `+s.schema.Table("companies")+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

func (s *CompanyStore) queryOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var c entity.Company
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.NIT, &c.ContactName, &c.Phone, &c.Email, &c.Address,
		&c.CommissionRate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
