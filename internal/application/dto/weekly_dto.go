package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWeeklyRequest entrada para liquidar la semana de un conductor.
// La comisión y el neto se calculan con la tarifa vigente de la empresa.
type CreateWeeklyRequest struct {
	DriverID    string          `json:"driver_id" validate:"required,uuid"`
	WeekStart   time.Time       `json:"week_start" validate:"required"`
	TripsCount  int             `json:"trips_count" validate:"min=0"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

// UpdateWeeklyStatusRequest entrada para avanzar el estado de una liquidación.
type UpdateWeeklyStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// WeeklyResponse salida de una liquidación semanal.
type WeeklyResponse struct {
	ID               string          `json:"id"`
	DriverID         string          `json:"driver_id"`
	WeekStart        time.Time       `json:"week_start"`
	TripsCount       int             `json:"trips_count"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// WeeklyListResponse lista paginada de liquidaciones.
type WeeklyListResponse struct {
	Items []WeeklyResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
