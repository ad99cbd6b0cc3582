package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment pago registrado a favor (o cargo) de una empresa del tenant.
// WeeklyProcessingID es opcional: un pago puede liquidar una semana concreta o
// ser un abono libre a la cuenta de la empresa.
type Payment struct {
	ID                 string
	CompanyID          string
	WeeklyProcessingID *string
	Amount             decimal.Decimal
	Method             string // transfer, cash, check
	Reference          string
	Notes              string
	PaidAt             time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Acciones registradas en payment_history.
const (
	PaymentActionCreated = "created"
	PaymentActionUpdated = "updated"
	PaymentActionDeleted = "deleted"
)

// PaymentHistory rastro de auditoría de un pago. Se escribe junto con cada
// mutación del pago, en la misma transacción.
type PaymentHistory struct {
	ID        string
	PaymentID string
	Action    string // ver constantes PaymentAction*
	Amount    decimal.Decimal
	Reference string
	ChangedAt time.Time
}
