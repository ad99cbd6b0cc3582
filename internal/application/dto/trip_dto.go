package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTripRequest entrada para registrar un viaje histórico.
type CreateTripRequest struct {
	DriverID    string          `json:"driver_id" validate:"required,uuid"`
	CompanyID   string          `json:"company_id" validate:"required,uuid"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	TripDate    time.Time       `json:"trip_date" validate:"required"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	Amount      decimal.Decimal `json:"amount"`
}

// TripResponse salida de un viaje histórico.
type TripResponse struct {
	ID          string          `json:"id"`
	DriverID    string          `json:"driver_id"`
	CompanyID   string          `json:"company_id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	TripDate    time.Time       `json:"trip_date"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TripListResponse lista paginada de viajes.
type TripListResponse struct {
	Items []TripResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
