package tenancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/tenancy"
)

// Caso 1: la derivación es pura y determinista — el mismo tenantID produce
// siempre el mismo esquema.
func TestDerive_EsPuraYDeterminista(t *testing.T) {
	a, err := tenancy.Derive("acme-1")
	require.NoError(t, err)
	b, err := tenancy.Derive("acme-1")
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String(), "la misma entrada debe producir el mismo esquema")
	assert.Equal(t, "tenant_acme_1", a.String())
}

// Caso 2: todo carácter no alfanumérico se reemplaza por '_' y la salida queda
// en minúsculas — el alfabeto final es [a-z0-9_].
func TestDerive_SanitizaCaracteres(t *testing.T) {
	cases := map[string]string{
		"acme-1":          "tenant_acme_1",
		"ACME 2":          "tenant_acme_2",
		"trans.portes/SA": "tenant_trans_portes_sa",
		"cliente@2024!":   "tenant_cliente_2024_",
		"a1b2c3":          "tenant_a1b2c3",
	}
	for in, want := range cases {
		got, err := tenancy.Derive(in)
		require.NoError(t, err, "entrada %q", in)
		assert.Equal(t, want, got.String(), "entrada %q", in)

		for _, r := range got.String() {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
			assert.True(t, ok, "carácter %q fuera del alfabeto permitido en %q", r, got.String())
		}
	}
}

// Caso 3: entradas que quedan vacías tras sanitizar se rechazan antes de tocar
// la base de datos.
func TestDerive_RechazaVacios(t *testing.T) {
	for _, in := range []string{"", "---", "!!!", "   ", "___"} {
		_, err := tenancy.Derive(in)
		require.Error(t, err, "entrada %q debe rechazarse", in)
		assert.ErrorIs(t, err, domain.ErrInvalidSchemaName)
	}
}

// Caso 4: identificadores que exceden el límite de PostgreSQL (63 bytes) se
// rechazan en la derivación.
func TestDerive_RechazaIdentificadoresLargos(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	_, err := tenancy.Derive(string(long))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSchemaName)
}

// Caso 5: Parse re-valida nombres almacenados — acepta solo lo que Derive pudo
// haber producido.
func TestParse_ReValidaNombresAlmacenados(t *testing.T) {
	ok, err := tenancy.Parse("tenant_acme_1")
	require.NoError(t, err)
	assert.Equal(t, "tenant_acme_1", ok.String())

	bad := []string{
		"public",                   // reservado, sin prefijo
		"acme_1",                   // sin prefijo tenant_
		"tenant_",                  // vacío tras el prefijo
		"tenant_acme; DROP TABLE",  // inyección
		"tenant_ACME",              // mayúsculas
		"tenant_acme-1",            // guion no permitido
	}
	for _, raw := range bad {
		_, err := tenancy.Parse(raw)
		require.Error(t, err, "nombre %q debe rechazarse", raw)
		assert.ErrorIs(t, err, domain.ErrInvalidSchemaName)
	}
}

// Caso 6: Table califica totalmente la referencia, que es la base de la
// estrategia de identificadores calificados por sentencia.
func TestTable_CalificaTotalmente(t *testing.T) {
	s, err := tenancy.Derive("acme-1")
	require.NoError(t, err)
	assert.Equal(t, "tenant_acme_1.drivers", s.Table("drivers"))
}

// Caso 7: el valor cero no es utilizable, evita interpolar un esquema vacío.
func TestSchemaName_ValorCero(t *testing.T) {
	var zero tenancy.SchemaName
	assert.True(t, zero.IsZero())

	derived, err := tenancy.Derive("acme-1")
	require.NoError(t, err)
	assert.False(t, derived.IsZero())
}
