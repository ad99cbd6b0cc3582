package dto

import "time"

// CreateTenantRequest entrada para dar de alta un tenant. El esquema se
// deriva del ID generado, no se recibe por la API.
type CreateTenantRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Subdomain    string `json:"subdomain" validate:"required,min=1,max=63"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Plan         string `json:"plan"`
}

// UpdateTenantStatusRequest entrada para transiciones de estado.
type UpdateTenantStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TenantResponse salida de un tenant del registro.
type TenantResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Subdomain     string     `json:"subdomain"`
	Status        string     `json:"status"`
	ContactEmail  string     `json:"contact_email"`
	ContactPhone  string     `json:"contact_phone"`
	Plan          string     `json:"plan"`
	SchemaName    string     `json:"schema_name"`
	Provisioned   bool       `json:"provisioned"`
	ProvisionedAt *time.Time `json:"provisioned_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TenantListResponse lista paginada de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
