package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear una orden de transporte. El número de
// orden lo asigna el secuencial del tenant, no se recibe por la API.
type CreateOrderRequest struct {
	CompanyID        string          `json:"company_id" validate:"required,uuid"`
	DriverID         *string         `json:"driver_id" validate:"omitempty,uuid"`
	Origin           string          `json:"origin" validate:"required"`
	Destination      string          `json:"destination" validate:"required"`
	CargoDescription string          `json:"cargo_description"`
	Amount           decimal.Decimal `json:"amount"`
	ScheduledAt      time.Time       `json:"scheduled_at"`
}

// UpdateOrderRequest entrada para actualizar una orden (el número no cambia).
type UpdateOrderRequest struct {
	DriverID         *string          `json:"driver_id" validate:"omitempty,uuid"`
	Origin           *string          `json:"origin"`
	Destination      *string          `json:"destination"`
	CargoDescription *string          `json:"cargo_description"`
	Amount           *decimal.Decimal `json:"amount"`
	Status           *string          `json:"status"`
	ScheduledAt      *time.Time       `json:"scheduled_at"`
}

// OrderResponse salida de una orden de transporte.
type OrderResponse struct {
	ID               string          `json:"id"`
	OrderNumber      int64           `json:"order_number"`
	CompanyID        string          `json:"company_id"`
	DriverID         *string         `json:"driver_id,omitempty"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	CargoDescription string          `json:"cargo_description"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	ScheduledAt      time.Time       `json:"scheduled_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
