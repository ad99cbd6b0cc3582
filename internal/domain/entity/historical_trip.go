package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoricalTrip viaje histórico importado o archivado; alimenta las
// liquidaciones semanales pero no se edita tras su registro.
type HistoricalTrip struct {
	ID          string
	DriverID    string
	CompanyID   string
	Origin      string
	Destination string
	TripDate    time.Time
	DistanceKm  decimal.Decimal
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
