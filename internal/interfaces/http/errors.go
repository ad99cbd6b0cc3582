package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/domain"
)

// respondError traduce errores del dominio a respuestas HTTP. Los errores de
// infraestructura no mapeados salen como 500 sin filtrar detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrTenantNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrNoRowsAffected):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ROWS_AFFECTED", Message: "la operación no afectó ninguna fila"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "estado incompatible con la operación"})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidSchemaName):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrTenantSuspended):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_SUSPENDED", Message: "tenant suspendido o inactivo"})
	case errors.Is(err, domain.ErrNotProvisioned):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PROVISIONED", Message: "tenant sin aprovisionar"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// missingHandle respuesta cuando el handle del tenant no está en el contexto
// (ruta mal registrada, sin TenantMiddleware).
func missingHandle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "tenant no resuelto en el contexto"})
}
