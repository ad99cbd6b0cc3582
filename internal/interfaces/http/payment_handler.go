package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
)

// PaymentHandler maneja las peticiones HTTP para pagos y su auditoría.
type PaymentHandler struct{}

// NewPaymentHandler construye el handler.
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

func (h *PaymentHandler) usecase(c *fiber.Ctx) *usecase.PaymentUseCase {
	handle := HandleFromCtx(c)
	if handle == nil {
		return nil
	}
	return usecase.NewPaymentUseCase(handle.Payments, handle.Balances, handle.Companies)
}

// Create registra un pago y acredita el saldo de la empresa.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == "" || in.Method == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id y method son requeridos"})
	}
	out, err := uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un pago por ID.
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	out, err := uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista pagos; con company_id filtra por empresa.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if companyID := c.Query("company_id"); companyID != "" {
		out, err := uc.ListByCompany(c.UserContext(), companyID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
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

// Update corrige un pago y ajusta el saldo por la diferencia.
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete revierte un pago.
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if err := uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History devuelve el rastro de auditoría de un pago.
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	out, err := uc.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
