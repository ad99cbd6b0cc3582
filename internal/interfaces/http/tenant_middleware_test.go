package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	apphttp "github.com/jhoicas/fletes-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/fletes-api/pkg/jwt"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testTenantID  = "acme-1"
	testIssuer    = "fletes-pro-test"
	testExpMin    = 60
)

// stubResolver resolver controlable para los tests del middleware.
type stubResolver struct {
	err      error
	resolved []string
}

func (r *stubResolver) Resolve(_ context.Context, tenantID string) (*repository.TenantHandle, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.resolved = append(r.resolved, tenantID)
	return &repository.TenantHandle{TenantID: tenantID}, nil
}
func (r *stubResolver) Release(string) {}
func (r *stubResolver) ReleaseAll()    {}

var _ repository.HandleResolver = (*stubResolver)(nil)

func buildTenantApp(resolver repository.HandleResolver) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	app := fiber.New()
	app.Get("/scoped",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.TenantMiddleware(resolver, log),
		func(c *fiber.Ctx) error {
			handle := apphttp.HandleFromCtx(c)
			return c.JSON(fiber.Map{"tenant_id": handle.TenantID})
		},
	)
	return app
}

func scopedRequest(t *testing.T, app *fiber.App, token, tenantHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tenantHeader != "" {
		req.Header.Set("X-Tenant-ID", tenantHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func tokenForTenant(t *testing.T, tenantID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, tenantID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// El tenant del token se resuelve y el handle queda disponible en el handler.
func TestTenantMiddleware_ResuelveDelToken(t *testing.T) {
	resolver := &stubResolver{}
	app := buildTenantApp(resolver)

	resp := scopedRequest(t, app, tokenForTenant(t, testTenantID), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{testTenantID}, resolver.resolved)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), testTenantID)
}

// X-Tenant-ID coincidente pasa; discrepante se rechaza sin resolver nada.
func TestTenantMiddleware_HeaderDiscrepante(t *testing.T) {
	resolver := &stubResolver{}
	app := buildTenantApp(resolver)

	resp := scopedRequest(t, app, tokenForTenant(t, testTenantID), testTenantID)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = scopedRequest(t, app, tokenForTenant(t, testTenantID), "other-2")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un X-Tenant-ID distinto al claim del token debe rechazarse")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TENANT_MISMATCH")
	assert.Equal(t, []string{testTenantID}, resolver.resolved,
		"la discrepancia no debe llegar al resolver")
}

// Tenant suspendido: 403; inexistente: 404; error de infraestructura: 500.
func TestTenantMiddleware_ErroresDeResolucion(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"suspendido", domain.ErrTenantSuspended, http.StatusForbidden},
		{"inexistente", domain.ErrTenantNotFound, http.StatusNotFound},
		{"infraestructura", errors.New("pool agotado"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTenantApp(&stubResolver{err: tc.err})
			resp := scopedRequest(t, app, tokenForTenant(t, testTenantID), "")
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

// Sin token no hay tenant que resolver.
func TestTenantMiddleware_SinToken(t *testing.T) {
	app := buildTenantApp(&stubResolver{})
	resp := scopedRequest(t, app, "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token sin claim de tenant se rechaza antes de resolver.
func TestTenantMiddleware_TokenSinTenant(t *testing.T) {
	resolver := &stubResolver{}
	app := buildTenantApp(resolver)
	resp := scopedRequest(t, app, tokenForTenant(t, ""), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resolver.resolved)
}

// RequireRole: superadmin pasa, admin no.
func TestRequireRole_SoloSuperadmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole("superadmin"),
		func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) },
	)

	super, err := pkgjwt.Generate(testJWTSecret, testUserID, "", "superadmin", testIssuer, testExpMin)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+super)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	admin, err := pkgjwt.Generate(testJWTSecret, testUserID, testTenantID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
