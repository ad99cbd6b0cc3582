package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse saldo acumulado de una empresa.
type BalanceResponse struct {
	CompanyID     string          `json:"company_id"`
	Balance       decimal.Decimal `json:"balance"`
	LastPaymentAt *time.Time      `json:"last_payment_at,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BalanceListResponse lista paginada de saldos.
type BalanceListResponse struct {
	Items []BalanceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
