package tenancy

import (
	"fmt"
	"strings"

	"github.com/jhoicas/fletes-api/internal/domain"
)

// Prefix marca todos los esquemas de tenant para distinguirlos de esquemas
// administrativos (admin, public) en el mismo cluster.
const Prefix = "tenant_"

// maxIdentifierLen límite de identificadores en PostgreSQL (NAMEDATALEN-1).
const maxIdentifierLen = 63

// reservedNames esquemas que nunca pueden pertenecer a un tenant.
var reservedNames = map[string]struct{}{
	"public":             {},
	"admin":              {},
	"information_schema": {},
	"pg_catalog":         {},
	"pg_toast":           {},
}

// SchemaName es un identificador de esquema validado. Solo se construye vía
// Derive o Parse, de modo que interpolarlo en una sentencia SQL es seguro por
// construcción: el valor siempre cumple ^tenant_[a-z0-9_]+$.
//
// El campo es privado a propósito: fuera de este paquete no hay forma de
// fabricar un SchemaName con contenido arbitrario.
type SchemaName struct {
	value string
}

// Derive deriva el nombre de esquema de un tenant a partir de su identificador.
// Es una función pura: minúsculas, todo carácter no alfanumérico se reemplaza
// por '_', y se antepone el prefijo tenant_. El mismo tenantID produce siempre
// el mismo resultado.
func Derive(tenantID string) (SchemaName, error) {
	sanitized := sanitize(tenantID)
	if strings.Trim(sanitized, "_") == "" {
		return SchemaName{}, fmt.Errorf("derivar esquema de %q: %w", tenantID, domain.ErrInvalidSchemaName)
	}
	name := Prefix + sanitized
	if len(name) > maxIdentifierLen {
		return SchemaName{}, fmt.Errorf("esquema %q excede %d bytes: %w", name, maxIdentifierLen, domain.ErrInvalidSchemaName)
	}
	return SchemaName{value: name}, nil
}

// Parse re-valida un nombre de esquema ya almacenado (p. ej. leído del registro
// de tenants). Rechaza cualquier valor que Derive no pudo haber producido.
func Parse(raw string) (SchemaName, error) {
	if !strings.HasPrefix(raw, Prefix) {
		return SchemaName{}, fmt.Errorf("esquema %q sin prefijo %s: %w", raw, Prefix, domain.ErrInvalidSchemaName)
	}
	if len(raw) > maxIdentifierLen {
		return SchemaName{}, fmt.Errorf("esquema %q excede %d bytes: %w", raw, maxIdentifierLen, domain.ErrInvalidSchemaName)
	}
	if _, reserved := reservedNames[raw]; reserved {
		return SchemaName{}, fmt.Errorf("esquema %q reservado: %w", raw, domain.ErrInvalidSchemaName)
	}
	rest := strings.TrimPrefix(raw, Prefix)
	if strings.Trim(rest, "_") == "" {
		return SchemaName{}, fmt.Errorf("esquema %q vacío tras el prefijo: %w", raw, domain.ErrInvalidSchemaName)
	}
	for _, r := range rest {
		if !isAllowed(r) {
			return SchemaName{}, fmt.Errorf("esquema %q con carácter %q: %w", raw, r, domain.ErrInvalidSchemaName)
		}
	}
	return SchemaName{value: raw}, nil
}

// String devuelve el identificador listo para calificar tablas: <schema>.<tabla>.
func (s SchemaName) String() string {
	return s.value
}

// IsZero informa si el valor no fue construido vía Derive/Parse.
func (s SchemaName) IsZero() bool {
	return s.value == ""
}

// Table devuelve la referencia totalmente calificada de una tabla del tenant.
func (s SchemaName) Table(name string) string {
	return s.value + "." + name
}

func sanitize(tenantID string) string {
	var b strings.Builder
	b.Grow(len(tenantID))
	for _, r := range strings.ToLower(tenantID) {
		if isAllowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isAllowed(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}
