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

// Asegura que TransportOrderStore implementa repository.TransportOrderStore.
var _ repository.TransportOrderStore = (*TransportOrderStore)(nil)

// TransportOrderStore adaptador de persistencia para órdenes de transporte,
// atado a un esquema de tenant en la construcción.
type TransportOrderStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewTransportOrderStore construye el store atado al esquema validado.
func NewTransportOrderStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *TransportOrderStore {
	return &TransportOrderStore{pool: pool, schema: schema, timeout: timeout}
}

const orderColumns = `id, order_number, company_id, driver_id, origin, destination,
	cargo_description, amount, status, scheduled_at, created_at, updated_at`

// Create persiste una orden nueva. El número de orden ya debe venir asignado
// desde el secuencial del tenant.
func (s *TransportOrderStore) Create(ctx context.Context, o *entity.TransportOrder) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `INSERT INTO ` + s.schema.Table("transport_orders") + ` (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := s.pool.Exec(ctx, query,
		o.ID, o.OrderNumber, o.CompanyID, o.DriverID, o.Origin, o.Destination,
		o.CargoDescription, o.Amount, o.Status, o.ScheduledAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transport order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (s *TransportOrderStore) GetByID(ctx context.Context, id string) (*entity.TransportOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM ` + s.schema.Table("transport_orders") + ` WHERE id = $1`
	return s.queryOne(ctx, query, id)
}

// GetByOrderNumber obtiene una orden por su clave natural.
func (s *TransportOrderStore) GetByOrderNumber(ctx context.Context, number int64) (*entity.TransportOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM ` + s.schema.Table("transport_orders") + ` WHERE order_number = $1`
	return s.queryOne(ctx, query, number)
}

// List devuelve órdenes del tenant con paginación.
func (s *TransportOrderStore) List(ctx context.Context, limit, offset int) ([]*entity.TransportOrder, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM ` + s.schema.Table("transport_orders") + `
		ORDER BY order_number DESC LIMIT $1 OFFSET $2`
	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transport orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.TransportOrder
	for rows.Next() {
		var o entity.TransportOrder
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CompanyID, &o.DriverID, &o.Origin, &o.Destination,
			&o.CargoDescription, &o.Amount, &o.Status, &o.ScheduledAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transport order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una orden; cero filas sube domain.ErrNoRowsAffected.
func (s *TransportOrderStore) Update(ctx context.Context, o *entity.TransportOrder) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `UPDATE ` + s.schema.Table("transport_orders") + `
		SET driver_id = $2, origin = $3, destination = $4, cargo_description = $5,
		    amount = $6, status = $7, scheduled_at = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := s.pool.Exec(ctx, query,
		o.ID, o.DriverID, o.Origin, o.Destination, o.CargoDescription,
		o.Amount, o.Status, o.ScheduledAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transport order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

// Delete elimina una orden; cero filas sube domain.ErrNoRowsAffected.
func (s *TransportOrderStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM `+s.schema.Table("transport_orders")+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transport order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

func (s *TransportOrderStore) queryOne(ctx context.Context, query string, arg any) (*entity.TransportOrder, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var o entity.TransportOrder
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&o.ID, &o.OrderNumber, &o.CompanyID, &o.DriverID, &o.Origin, &o.Destination,
		&o.CargoDescription, &o.Amount, &o.Status, &o.ScheduledAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get transport order: %w", err)
	}
	return &o, nil
}
