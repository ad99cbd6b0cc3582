package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago a una empresa.
type CreatePaymentRequest struct {
	CompanyID          string          `json:"company_id" validate:"required,uuid"`
	WeeklyProcessingID *string         `json:"weekly_processing_id" validate:"omitempty,uuid"`
	Amount             decimal.Decimal `json:"amount"`
	Method             string          `json:"method" validate:"required,oneof=transfer cash check"`
	Reference          string          `json:"reference"`
	Notes              string          `json:"notes"`
	PaidAt             time.Time       `json:"paid_at"`
}

// UpdatePaymentRequest entrada para corregir un pago registrado.
type UpdatePaymentRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Method    *string          `json:"method" validate:"omitempty,oneof=transfer cash check"`
	Reference *string          `json:"reference"`
	Notes     *string          `json:"notes"`
	PaidAt    *time.Time       `json:"paid_at"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	WeeklyProcessingID *string         `json:"weekly_processing_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Method             string          `json:"method"`
	Reference          string          `json:"reference"`
	Notes              string          `json:"notes"`
	PaidAt             time.Time       `json:"paid_at"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PaymentHistoryResponse entrada del rastro de auditoría de un pago.
type PaymentHistoryResponse struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	Action    string          `json:"action"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
	ChangedAt time.Time       `json:"changed_at"`
}
