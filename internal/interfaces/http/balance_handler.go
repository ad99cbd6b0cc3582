package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
)

// BalanceHandler consultas de saldos por empresa (solo lectura).
type BalanceHandler struct{}

// NewBalanceHandler construye el handler.
func NewBalanceHandler() *BalanceHandler {
	return &BalanceHandler{}
}

func (h *BalanceHandler) usecase(c *fiber.Ctx) *usecase.BalanceUseCase {
	handle := HandleFromCtx(c)
	if handle == nil {
		return nil
	}
	return usecase.NewBalanceUseCase(handle.Balances)
}

// GetByCompany obtiene el saldo de una empresa.
func (h *BalanceHandler) GetByCompany(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	out, err := uc.GetByCompany(c.UserContext(), c.Params("company_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista saldos del tenant.
func (h *BalanceHandler) List(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
