package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/usecase"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenantUC  *usecase.TenantUseCase
	Resolver  repository.HandleResolver
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. El plano de control de tenants exige
// rol superadmin; las rutas operativas resuelven el handle del tenant del
// token antes de tocar cualquier store.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Plano de control (requiere Bearer Token con rol superadmin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole("superadmin"))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants := admin.Group("/tenants")
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Patch("/:id/status", tenantHandler.UpdateStatus)
	tenants.Post("/:id/provision", tenantHandler.Provision)
	tenants.Delete("/:id", tenantHandler.Delete)

	// Rutas operativas (requieren Bearer Token y tenant operativo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), TenantMiddleware(deps.Resolver, deps.Log))

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler()
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	drivers := protected.Group("/drivers")
	driverHandler := NewDriverHandler()
	drivers.Post("/", driverHandler.Create)
	drivers.Get("/", driverHandler.List)
	drivers.Get("/:id", driverHandler.GetByID)
	drivers.Put("/:id", driverHandler.Update)
	drivers.Delete("/:id", driverHandler.Delete)

	weeklies := protected.Group("/weekly-processing")
	weeklyHandler := NewWeeklyHandler()
	weeklies.Post("/", weeklyHandler.Create)
	weeklies.Get("/", weeklyHandler.List)
	weeklies.Get("/:id", weeklyHandler.GetByID)
	weeklies.Patch("/:id/status", weeklyHandler.UpdateStatus)
	weeklies.Delete("/:id", weeklyHandler.Delete)

	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler()
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Get("/:id/history", paymentHandler.History)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	balances := protected.Group("/balances")
	balanceHandler := NewBalanceHandler()
	balances.Get("/", balanceHandler.List)
	balances.Get("/:company_id", balanceHandler.GetByCompany)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler()
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/number/:number", orderHandler.GetByNumber)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	trips := protected.Group("/historical-trips")
	tripHandler := NewTripHandler()
	trips.Post("/", tripHandler.Create)
	trips.Get("/", tripHandler.List)
	trips.Get("/:id", tripHandler.GetByID)
	trips.Delete("/:id", tripHandler.Delete)
}
