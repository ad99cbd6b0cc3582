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

// Asegura que WeeklyProcessingStore implementa repository.WeeklyProcessingStore.
var _ repository.WeeklyProcessingStore = (*WeeklyProcessingStore)(nil)

// WeeklyProcessingStore adaptador de persistencia para liquidaciones
// semanales, atado a un esquema de tenant en la construcción.
type WeeklyProcessingStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewWeeklyProcessingStore construye el store atado al esquema validado.
func NewWeeklyProcessingStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *WeeklyProcessingStore {
	return &WeeklyProcessingStore{pool: pool, schema: schema, timeout: timeout}
}

const weeklyColumns = `id, driver_id, week_start, trips_count, gross_amount,
	commission_amount, net_amount, status, created_at, updated_at`

// Create persiste una liquidación semanal nueva. La clave natural
// (driver_id, week_start) es única: duplicados suben domain.ErrDuplicate.
func (s *WeeklyProcessingStore) Create(ctx context.Context, wp *entity.WeeklyProcessing) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `INSERT INTO ` + s.schema.Table("weekly_processing") + ` (` + weeklyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.pool.Exec(ctx, query,
		wp.ID, wp.DriverID, wp.WeekStart, wp.TripsCount, wp.GrossAmount,
		wp.CommissionAmount, wp.NetAmount, wp.Status, wp.CreatedAt, wp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert weekly processing: %w", err)
	}
	return nil
}

// GetByID obtiene una liquidación por ID.
func (s *WeeklyProcessingStore) GetByID(ctx context.Context, id string) (*entity.WeeklyProcessing, error) {
	query := `SELECT ` + weeklyColumns + ` FROM ` + s.schema.Table("weekly_processing") + ` WHERE id = $1`
	return s.queryOne(ctx, query, id)
}

// GetByDriverWeek busca por la clave natural (conductor, semana).
func (s *WeeklyProcessingStore) GetByDriverWeek(ctx context.Context, driverID string, weekStart time.Time) (*entity.WeeklyProcessing, error) {
	query := `SELECT ` + weeklyColumns + ` FROM ` + s.schema.Table("weekly_processing") + `
		WHERE driver_id = $1 AND week_start = $2`
	return s.queryOne(ctx, query, driverID, weekStart)
}

// List devuelve liquidaciones del tenant con paginación.
func (s *WeeklyProcessingStore) List(ctx context.Context, limit, offset int) ([]*entity.WeeklyProcessing, error) {
	query := `SELECT ` + weeklyColumns + ` FROM ` + s.schema.Table("weekly_processing") + `
		ORDER BY week_start DESC LIMIT $1 OFFSET $2`
	return s.queryMany(ctx, query, limit, offset)
}

// ListByDriver devuelve las liquidaciones de un conductor.
func (s *WeeklyProcessingStore) ListByDriver(ctx context.Context, driverID string) ([]*entity.WeeklyProcessing, error) {
	query := `SELECT ` + weeklyColumns + ` FROM ` + s.schema.Table("weekly_processing") + `
		WHERE driver_id = $1 ORDER BY week_start DESC`
	return s.queryMany(ctx, query, driverID)
}

// Update actualiza una liquidación; cero filas sube domain.ErrNoRowsAffected.
func (s *WeeklyProcessingStore) Update(ctx context.Context, wp *entity.WeeklyProcessing) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `UPDATE ` + s.schema.Table("weekly_processing") + `
		SET trips_count = $2, gross_amount = $3, commission_amount = $4,
		    net_amount = $5, status = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := s.pool.Exec(ctx, query,
		wp.ID, wp.TripsCount, wp.GrossAmount, wp.CommissionAmount,
		wp.NetAmount, wp.Status, wp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update weekly processing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

// Delete elimina una liquidación; cero filas sube domain.ErrNoRowsAffected.
func (s *WeeklyProcessingStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM `+s.schema.Table("weekly_processing")+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete weekly processing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

func (s *WeeklyProcessingStore) queryOne(ctx context.Context, query string, args ...any) (*entity.WeeklyProcessing, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var wp entity.WeeklyProcessing
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&wp.ID, &wp.DriverID, &wp.WeekStart, &wp.TripsCount, &wp.GrossAmount,
		&wp.CommissionAmount, &wp.NetAmount, &wp.Status, &wp.CreatedAt, &wp.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get weekly processing: %w", err)
	}
	return &wp, nil
}

func (s *WeeklyProcessingStore) queryMany(ctx context.Context, query string, args ...any) ([]*entity.WeeklyProcessing, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weekly processing: %w", err)
	}
	defer rows.Close()

	var list []*entity.WeeklyProcessing
	for rows.Next() {
		var wp entity.WeeklyProcessing
		if err := rows.Scan(
			&wp.ID, &wp.DriverID, &wp.WeekStart, &wp.TripsCount, &wp.GrossAmount,
			&wp.CommissionAmount, &wp.NetAmount, &wp.Status, &wp.CreatedAt, &wp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan weekly processing: %w", err)
		}
		list = append(list, &wp)
	}
	return list, rows.Err()
}
