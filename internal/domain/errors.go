package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los adaptadores de persistencia traducen errores crudos de PostgreSQL a estos
// valores; la capa de negocio nunca interpreta códigos SQLSTATE.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")

	// ErrNoRowsAffected: un UPDATE/DELETE ejecutó pero no tocó ninguna fila.
	// Se distingue de ErrNotFound porque indica una referencia obsoleta del
	// llamador (bug de lógica), no una ausencia esperada. Un delete silencioso
	// que no borra nada es un bug de corrección, nunca se retorna éxito.
	ErrNoRowsAffected = errors.New("la operación no afectó ninguna fila")

	// Errores del plano de control de tenants.
	ErrTenantNotFound     = errors.New("tenant no encontrado")
	ErrTenantSuspended    = errors.New("tenant suspendido o inactivo")
	ErrTenantProvisioned  = errors.New("el tenant ya fue aprovisionado")
	ErrNotProvisioned     = errors.New("el tenant no ha sido aprovisionado")
	ErrInvalidSchemaName  = errors.New("nombre de esquema inválido")
	ErrProvisioningFailed = errors.New("aprovisionamiento del tenant fallido")
)
