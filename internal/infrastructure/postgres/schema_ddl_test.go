package postgres

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Toda referencia a tabla dentro del DDL debe ir calificada con {schema}: una
// referencia sin calificar caería en search_path y rompería el aislamiento.
func TestTenantTables_ReferenciasCalificadas(t *testing.T) {
	refPattern := regexp.MustCompile(`(?i)(CREATE TABLE|REFERENCES)\s+([^\s(]+)`)

	for _, tbl := range tenantTables {
		for _, m := range refPattern.FindAllStringSubmatch(tbl.ddl, -1) {
			assert.True(t, strings.HasPrefix(m[2], "{schema}."),
				"tabla %s: la referencia %q debe calificarse con {schema}", tbl.name, m[2])
		}
	}
}

// El nombre declarado de cada tabla coincide con el del CREATE TABLE.
func TestTenantTables_NombresConsistentes(t *testing.T) {
	for _, tbl := range tenantTables {
		assert.Contains(t, tbl.ddl, "CREATE TABLE {schema}."+tbl.name+" ",
			"el DDL de %s debe crear exactamente esa tabla", tbl.name)
	}
}

// El orden respeta dependencias: toda tabla referenciada por una FK debe
// haberse creado antes.
func TestTenantTables_OrdenDeDependencias(t *testing.T) {
	created := make(map[string]bool)
	fkPattern := regexp.MustCompile(`(?i)REFERENCES\s+\{schema\}\.([a-z_]+)`)

	for _, tbl := range tenantTables {
		for _, m := range fkPattern.FindAllStringSubmatch(tbl.ddl, -1) {
			assert.True(t, created[m[1]],
				"tabla %s referencia a %s antes de su creación", tbl.name, m[1])
		}
		created[tbl.name] = true
	}
}

// Las claves naturales del dominio existen como restricciones UNIQUE.
func TestTenantTables_ClavesNaturales(t *testing.T) {
	byName := make(map[string]string, len(tenantTables))
	for _, tbl := range tenantTables {
		byName[tbl.name] = tbl.ddl
	}
	require.Len(t, byName, 9, "el esquema de un tenant tiene 9 tablas")

	assert.Contains(t, byName["companies"], "nit VARCHAR(20) UNIQUE")
	assert.Contains(t, byName["drivers"], "document VARCHAR(30) UNIQUE")
	assert.Contains(t, byName["transport_orders"], "order_number BIGINT UNIQUE")
	assert.Contains(t, byName["weekly_processing"], "UNIQUE (driver_id, week_start)")
	assert.Contains(t, byName["payment_history"], "ON DELETE CASCADE")
}
