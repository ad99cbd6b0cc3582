package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CompanyBalanceStore define el puerto de persistencia para saldos por
// empresa dentro del esquema de un tenant (DIP).
type CompanyBalanceStore interface {
	GetByCompany(ctx context.Context, companyID string) (*entity.CompanyBalance, error)
	List(ctx context.Context, limit, offset int) ([]*entity.CompanyBalance, error)
	// Adjust suma delta al saldo de la empresa (upsert de la fila si no existe).
	Adjust(ctx context.Context, companyID string, delta decimal.Decimal, paidAt time.Time) error
}
