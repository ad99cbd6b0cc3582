package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de transporte.
const (
	OrderStatusScheduled  = "scheduled"
	OrderStatusInTransit  = "in_transit"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// TransportOrder orden de transporte del tenant. OrderNumber es la clave
// natural, consumida del secuencial propio del tenant (order_sequence).
type TransportOrder struct {
	ID               string
	OrderNumber      int64
	CompanyID        string
	DriverID         *string // puede asignarse después de crear la orden
	Origin           string
	Destination      string
	CargoDescription string
	Amount           decimal.Decimal
	Status           string // ver constantes OrderStatus*
	ScheduledAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
