package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una empresa transportadora dentro del esquema de un tenant.
// Cada tenant ve exclusivamente sus propias empresas.
type Company struct {
	ID             string
	Name           string
	NIT            string // NIT colombiano, clave natural dentro del tenant
	ContactName    string
	Phone          string
	Email          string
	Address        string
	CommissionRate decimal.Decimal // fracción, ej. 0.10 = 10% sobre el bruto semanal
	Status         string          // active, suspended, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
