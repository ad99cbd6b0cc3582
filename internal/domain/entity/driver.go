package entity

import "time"

// Driver conductor vinculado a una empresa del mismo tenant.
type Driver struct {
	ID            string
	CompanyID     string // referencia a companies dentro del mismo esquema
	Name          string
	Document      string // cédula, clave natural dentro del tenant
	Phone         string
	LicenseNumber string
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
