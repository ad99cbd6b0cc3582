package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del procesamiento semanal.
const (
	WeeklyStatusPending   = "pending"
	WeeklyStatusProcessed = "processed"
	WeeklyStatusPaid      = "paid"
)

// WeeklyProcessing liquidación semanal de viajes de un conductor: bruto,
// comisión de la empresa y neto a pagar.
type WeeklyProcessing struct {
	ID               string
	DriverID         string
	WeekStart        time.Time // lunes de la semana liquidada
	TripsCount       int
	GrossAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	NetAmount        decimal.Decimal
	Status           string // ver constantes WeeklyStatus*
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
