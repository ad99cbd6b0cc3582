package dto

import "time"

// CreateDriverRequest entrada para registrar un conductor.
type CreateDriverRequest struct {
	CompanyID     string `json:"company_id" validate:"required,uuid"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Document      string `json:"document" validate:"required,min=1,max=20"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

// UpdateDriverRequest entrada para actualizar un conductor (el documento no cambia).
type UpdateDriverRequest struct {
	CompanyID     *string `json:"company_id" validate:"omitempty,uuid"`
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
	Status        *string `json:"status"`
}

// DriverResponse salida de un conductor.
type DriverResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Name          string    `json:"name"`
	Document      string    `json:"document"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DriverListResponse lista paginada de conductores.
type DriverListResponse struct {
	Items []DriverResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
