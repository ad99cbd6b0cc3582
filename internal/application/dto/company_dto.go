package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para crear una empresa transportadora.
type CreateCompanyRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	NIT            string          `json:"nit" validate:"required,min=1,max=20"`
	ContactName    string          `json:"contact_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Address        string          `json:"address"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (el NIT no cambia).
type UpdateCompanyRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ContactName    *string          `json:"contact_name"`
	Phone          *string          `json:"phone"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Address        *string          `json:"address"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	Status         *string          `json:"status"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NIT            string          `json:"nit"`
	ContactName    string          `json:"contact_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
