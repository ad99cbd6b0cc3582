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

// Asegura que OrderSequenceStore implementa repository.OrderSequenceStore.
var _ repository.OrderSequenceStore = (*OrderSequenceStore)(nil)

// OrderSequenceStore adaptador del secuencial de órdenes del tenant.
// La tabla tiene una sola fila (id = 1) sembrada en el aprovisionamiento.
type OrderSequenceStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewOrderSequenceStore construye el store atado al esquema validado.
func NewOrderSequenceStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *OrderSequenceStore {
	return &OrderSequenceStore{pool: pool, schema: schema, timeout: timeout}
}

// Current devuelve el estado actual del secuencial sin incrementarlo.
func (s *OrderSequenceStore) Current(ctx context.Context) (*entity.OrderSequence, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT id, current_value, updated_at FROM ` + s.schema.Table("order_sequence") + ` WHERE id = 1`
	var seq entity.OrderSequence
	err := s.pool.QueryRow(ctx, query).Scan(&seq.ID, &seq.CurrentValue, &seq.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotProvisioned
		}
		return nil, fmt.Errorf("get order sequence: %w", err)
	}
	return &seq, nil
}

// Next incrementa el secuencial en una sola sentencia atómica y devuelve el
// nuevo valor. El UPDATE con RETURNING evita condiciones de carrera entre
// peticiones concurrentes del mismo tenant.
func (s *OrderSequenceStore) Next(ctx context.Context) (int64, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `UPDATE ` + s.schema.Table("order_sequence") + `
		SET current_value = current_value + 1, updated_at = NOW()
		WHERE id = 1
		RETURNING current_value`
	var next int64
	if err := s.pool.QueryRow(ctx, query).Scan(&next); err != nil {
		if isNoRows(err) {
			return 0, domain.ErrNotProvisioned
		}
		return 0, fmt.Errorf("advance order sequence: %w", err)
	}
	return next, nil
}
