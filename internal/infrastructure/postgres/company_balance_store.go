package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
)

// Asegura que CompanyBalanceStore implementa repository.CompanyBalanceStore.
var _ repository.CompanyBalanceStore = (*CompanyBalanceStore)(nil)

// CompanyBalanceStore adaptador de persistencia para saldos por empresa,
// atado a un esquema de tenant en la construcción.
type CompanyBalanceStore struct {
	pool    *pgxpool.Pool
	schema  tenancy.SchemaName
	timeout time.Duration
}

// NewCompanyBalanceStore construye el store atado al esquema validado.
func NewCompanyBalanceStore(pool *pgxpool.Pool, schema tenancy.SchemaName, timeout time.Duration) *CompanyBalanceStore {
	return &CompanyBalanceStore{pool: pool, schema: schema, timeout: timeout}
}

// GetByCompany obtiene el saldo de una empresa. domain.ErrNotFound si la
// empresa no tiene fila de saldo todavía.
func (s *CompanyBalanceStore) GetByCompany(ctx context.Context, companyID string) (*entity.CompanyBalance, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT company_id, balance, last_payment_at, updated_at
		FROM ` + s.schema.Table("company_balances") + ` WHERE company_id = $1`
	var b entity.CompanyBalance
	err := s.pool.QueryRow(ctx, query, companyID).Scan(
		&b.CompanyID, &b.Balance, &b.LastPaymentAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// List devuelve saldos del tenant con paginación.
func (s *CompanyBalanceStore) List(ctx context.Context, limit, offset int) ([]*entity.CompanyBalance, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `SELECT company_id, balance, last_payment_at, updated_at
		FROM ` + s.schema.Table("company_balances") + `
		ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyBalance
	for rows.Next() {
		var b entity.CompanyBalance
		if err := rows.Scan(&b.CompanyID, &b.Balance, &b.LastPaymentAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Adjust suma delta al saldo de la empresa con upsert: la primera mutación
// crea la fila. La suma es atómica en el servidor, sin read-modify-write.
func (s *CompanyBalanceStore) Adjust(ctx context.Context, companyID string, delta decimal.Decimal, paidAt time.Time) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	query := `INSERT INTO ` + s.schema.Table("company_balances") + `
		(company_id, balance, last_payment_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (company_id) DO UPDATE
		SET balance = ` + s.schema.Table("company_balances") + `.balance + EXCLUDED.balance,
		    last_payment_at = EXCLUDED.last_payment_at,
		    updated_at = NOW()`
	if _, err := s.pool.Exec(ctx, query, companyID, delta, paidAt); err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	return nil
}
