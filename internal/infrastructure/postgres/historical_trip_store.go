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

// Asegura que HistoricalTripStore implementa repository.HistoricalTripStore.
var _ repository.HistoricalTripStore = (*HistoricalTripStore)(nil)

// HistoricalTripStore adaptador de persistencia para viajes históricos,
// atado a un esquema de tenant en la construcción.
type HistoricalTripStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewHistoricalTripStore construye el store atado al esquema validado.
func NewHistoricalTripStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *HistoricalTripStore {
	return &HistoricalTripStore{pool: pool, schema: schema, timeout: timeout}
}

const tripColumns = `id, driver_id, company_id, origin, destination, trip_date,
	distance_km, amount, created_at`

// Create registra un viaje histórico.
func (s *HistoricalTripStore) Create(ctx context.Context, t *entity.HistoricalTrip) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `INSERT INTO ` + s.schema.Table("historical_trips") + ` (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.pool.Exec(ctx, query,
		t.ID, t.DriverID, t.CompanyID, t.Origin, t.Destination, t.TripDate,
		t.DistanceKm, t.Amount, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historical trip: %w", err)
	}
	return nil
}

// GetByID obtiene un viaje por ID.
func (s *HistoricalTripStore) GetByID(ctx context.Context, id string) (*entity.HistoricalTrip, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM ` + s.schema.Table("historical_trips") + ` WHERE id = $1`
	var t entity.HistoricalTrip
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.DriverID, &t.CompanyID, &t.Origin, &t.Destination, &t.TripDate,
		&t.DistanceKm, &t.Amount, &t.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get historical trip: %w", err)
	}
	return &t, nil
}

// List devuelve viajes del tenant con paginación.
func (s *HistoricalTripStore) List(ctx context.Context, limit, offset int) ([]*entity.HistoricalTrip, error) {
	query := `SELECT ` + tripColumns + ` FROM ` + s.schema.Table("historical_trips") + `
		ORDER BY trip_date DESC LIMIT $1 OFFSET $2`
	return s.queryMany(ctx, query, limit, offset)
}

// ListByDriver devuelve los viajes de un conductor.
func (s *HistoricalTripStore) ListByDriver(ctx context.Context, driverID string) ([]*entity.HistoricalTrip, error) {
	query := `SELECT ` + tripColumns + ` FROM ` + s.schema.Table("historical_trips") + `
		WHERE driver_id = $1 ORDER BY trip_date DESC`
	return s.queryMany(ctx, query, driverID)
}

// Delete elimina un viaje; cero filas sube domain.ErrNoRowsAffected.
func (s *HistoricalTripStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM `+s.schema.Table("historical_trips")+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete historical trip: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

func (s *HistoricalTripStore) queryMany(ctx context.Context, query string, args ...any) ([]*entity.HistoricalTrip, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list historical trips: %w", err)
	}
	defer rows.Close()

	var list []*entity.HistoricalTrip
	for rows.Next() {
		var t entity.HistoricalTrip
		if err := rows.Scan(
			&t.ID, &t.DriverID, &t.CompanyID, &t.Origin, &t.Destination, &t.TripDate,
			&t.DistanceKm, &t.Amount, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan historical trip: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
