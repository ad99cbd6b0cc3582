package entity

import "time"

// Estados de ciclo de vida de un tenant. Las transiciones son solo de plano de
// control: nunca tocan los datos operativos del esquema del tenant.
const (
	TenantStatusTrial     = "trial"
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
	TenantStatusInactive  = "inactive"
)

// Tenant representa una organización cliente en el registro compartido
// (plano de control). Sus datos operativos viven en su propio esquema.
type Tenant struct {
	ID            string
	Name          string
	Subdomain     string // slug único, ej. "acme" en acme.fletespro.com
	Status        string // ver constantes TenantStatus*
	ContactEmail  string
	ContactPhone  string
	Plan          string // metadatos de suscripción (básico/estándar/premium)
	SchemaName    string // esquema derivado, ej. tenant_acme_1
	Provisioned   bool   // true solo tras un aprovisionamiento completo
	ProvisionedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidTenantStatus informa si s es un estado de tenant conocido.
func ValidTenantStatus(s string) bool {
	switch s {
	case TenantStatusTrial, TenantStatusActive, TenantStatusSuspended, TenantStatusInactive:
		return true
	}
	return false
}

// Operational informa si el tenant puede atender tráfico (resolver handles).
func (t *Tenant) Operational() bool {
	return t.Status == TenantStatusTrial || t.Status == TenantStatusActive
}
