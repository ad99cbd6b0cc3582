package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyBalance saldo acumulado de una empresa del tenant. Una fila por
// empresa; se ajusta al registrar o revertir pagos.
type CompanyBalance struct {
	CompanyID     string
	Balance       decimal.Decimal
	LastPaymentAt *time.Time
	UpdatedAt     time.Time
}
