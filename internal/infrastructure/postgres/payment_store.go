package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
)

// Asegura que PaymentStore implementa repository.PaymentStore.
var _ repository.PaymentStore = (*PaymentStore)(nil)

// PaymentStore adaptador de persistencia para pagos, atado a un esquema de
// tenant en la construcción. Las mutaciones escriben payment_history en la
// misma transacción: el rastro de auditoría nunca diverge del pago.
type PaymentStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewPaymentStore construye el store atado al esquema validado.
func NewPaymentStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *PaymentStore {
	return &PaymentStore{pool: pool, schema: schema, timeout: timeout}
}

const paymentColumns = `id, company_id, weekly_processing_id, amount, method,
	reference, notes, paid_at, created_at, updated_at`

// Create persiste un pago nuevo y su primer registro de historia.
func (s *PaymentStore) Create(ctx context.Context, p *entity.Payment) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `INSERT INTO ` + s.schema.Table("payments") + ` (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.Exec(ctx, query,
		p.ID, p.CompanyID, p.WeeklyProcessingID, p.Amount, p.Method,
		p.Reference, p.Notes, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	if err := s.insertHistory(ctx, tx, p, entity.PaymentActionCreated); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (s *PaymentStore) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM ` + s.schema.Table("payments") + ` WHERE id = $1`
	return s.queryOne(ctx, query, id)
}

// List devuelve pagos del tenant con paginación.
func (s *PaymentStore) List(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM ` + s.schema.Table("payments") + `
		ORDER BY paid_at DESC LIMIT $1 OFFSET $2`
	return s.queryMany(ctx, query, limit, offset)
}

// ListByCompany devuelve los pagos de una empresa del tenant.
func (s *PaymentStore) ListByCompany(ctx context.Context, companyID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM ` + s.schema.Table("payments") + `
		WHERE company_id = $1 ORDER BY paid_at DESC`
	return s.queryMany(ctx, query, companyID)
}

// Update actualiza un pago y deja rastro en payment_history dentro de la
// misma transacción. Cero filas afectadas sube domain.ErrNoRowsAffected.
func (s *PaymentStore) Update(ctx context.Context, p *entity.Payment) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `UPDATE ` + s.schema.Table("payments") + `
		SET amount = $2, method = $3, reference = $4, notes = $5, paid_at = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := tx.Exec(ctx, query,
		p.ID, p.Amount, p.Method, p.Reference, p.Notes, p.PaidAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}

	if err := s.insertHistory(ctx, tx, p, entity.PaymentActionUpdated); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina un pago (la historia cae en cascada). Cero filas afectadas
// sube domain.ErrNoRowsAffected: un delete silencioso es un bug del llamador.
func (s *PaymentStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM `+s.schema.Table("payments")+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

// ListHistory devuelve el rastro de auditoría de un pago.
func (s *PaymentStore) ListHistory(ctx context.Context, paymentID string) ([]*entity.PaymentHistory, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT id, payment_id, action, amount, reference, changed_at
		FROM ` + s.schema.Table("payment_history") + `
		WHERE payment_id = $1 ORDER BY changed_at`
	rows, err := s.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list payment history: %w", err)
	}
	defer rows.Close()

	var list []*entity.PaymentHistory
	for rows.Next() {
		var h entity.PaymentHistory
		if err := rows.Scan(&h.ID, &h.PaymentID, &h.Action, &h.Amount, &h.Reference, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan payment history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

func (s *PaymentStore) insertHistory(ctx context.Context, tx pgx.Tx, p *entity.Payment, action string) error {
	query := `INSERT INTO ` + s.schema.Table("payment_history") + `
		(id, payment_id, action, amount, reference, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query,
		uuid.New().String(), p.ID, action, p.Amount, p.Reference, time.Now(),
	); err != nil {
		return fmt.Errorf("insert payment history: %w", err)
	}
	return nil
}

func (s *PaymentStore) queryOne(ctx context.Context, query string, arg any) (*entity.Payment, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var p entity.Payment
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.CompanyID, &p.WeeklyProcessingID, &p.Amount, &p.Method,
		&p.Reference, &p.Notes, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (s *PaymentStore) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Payment, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.WeeklyProcessingID, &p.Amount, &p.Method,
			&p.Reference, &p.Notes, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
