package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

// LocalTenantHandle key del handle del tenant resuelto en c.Locals.
const LocalTenantHandle = "tenant_handle"

// TenantMiddleware resuelve el handle del tenant del token y lo deja en
// c.Locals. Si la petición trae X-Tenant-ID debe coincidir con el claim del
// token; una discrepancia se rechaza en vez de preferir uno de los dos.
func TenantMiddleware(resolver repository.HandleResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID := GetTenantID(c)
		if tenantID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TENANT", Message: "token sin tenant"})
		}
		if header := c.Get("X-Tenant-ID"); header != "" && header != tenantID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_MISMATCH", Message: "X-Tenant-ID no coincide con el token"})
		}

		handle, err := resolver.Resolve(c.UserContext(), tenantID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTenantNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TENANT_NOT_FOUND", Message: "tenant no existe"})
			case errors.Is(err, domain.ErrTenantSuspended):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_SUSPENDED", Message: "tenant suspendido o inactivo"})
			}
			log.Error().Err(err).Str("tenant_id", tenantID).Msg("resolución de handle falló")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver el tenant"})
		}
		c.Locals(LocalTenantHandle, handle)
		return c.Next()
	}
}

// HandleFromCtx devuelve el handle del tenant resuelto por TenantMiddleware.
func HandleFromCtx(c *fiber.Ctx) *repository.TenantHandle {
	v := c.Locals(LocalTenantHandle)
	if v == nil {
		return nil
	}
	h, _ := v.(*repository.TenantHandle)
	return h
}
