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

// Asegura que DriverStore implementa repository.DriverStore.
var _ repository.DriverStore = (*DriverStore)(nil)

// DriverStore adaptador de persistencia para conductores, atado a un esquema
// de tenant en la construcción.
type DriverStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewDriverStore construye el store atado al esquema validado.
func NewDriverStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *DriverStore {
	return &DriverStore{pool: pool, schema: schema, timeout: timeout}
}

const driverColumns = `id, company_id, name, document, phone, license_number,
	status, created_at, updated_at`

// Create persiste un conductor nuevo.
func (s *DriverStore) Create(ctx context.Context, d *entity.Driver) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `INSERT INTO ` + s.schema.Table("drivers") + ` (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.pool.Exec(ctx, query,
		d.ID, d.CompanyID, d.Name, d.Document, d.Phone, d.LicenseNumber,
		d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtiene un conductor por ID.
func (s *DriverStore) GetByID(ctx context.Context, id string) (*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM ` + s.schema.Table("drivers") + ` WHERE id = $1`
	return s.queryOne(ctx, query, id)
}

// GetByDocument obtiene un conductor por su clave natural (cédula).
func (s *DriverStore) GetByDocument(ctx context.Context, document string) (*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM ` + s.schema.Table("drivers") + ` WHERE document = $1`
	return s.queryOne(ctx, query, document)
}

// List devuelve conductores del tenant con paginación.
func (s *DriverStore) List(ctx context.Context, limit, offset int) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM ` + s.schema.Table("drivers") + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return s.queryMany(ctx, query, limit, offset)
}

// ListByCompany devuelve los conductores de una empresa del tenant.
func (s *DriverStore) ListByCompany(ctx context.Context, companyID string) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM ` + s.schema.Table("drivers") + `
		WHERE company_id = $1 ORDER BY name`
	return s.queryMany(ctx, query, companyID)
}

// Update actualiza un conductor. Cero filas afectadas sube domain.ErrNoRowsAffected.
func (s *DriverStore) Update(ctx context.Context, d *entity.Driver) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `UPDATE ` + s.schema.Table("drivers") + `
		SET company_id = $2, name = $3, document = $4, phone = $5,
		    license_number = $6, status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := s.pool.Exec(ctx, query,
		d.ID, d.CompanyID, d.Name, d.Document, d.Phone, d.LicenseNumber, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update driver: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

// Delete elimina un conductor por ID; cero filas sube domain.ErrNoRowsAffected.
func (s *DriverStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM `+s.schema.Table("drivers")+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

func (s *DriverStore) queryOne(ctx context.Context, query string, arg any) (*entity.Driver, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var d entity.Driver
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Document, &d.Phone, &d.LicenseNumber,
		&d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

func (s *DriverStore) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Driver, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.Name, &d.Document, &d.Phone, &d.LicenseNumber,
			&d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
