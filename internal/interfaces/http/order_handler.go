package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para órdenes de transporte.
type OrderHandler struct{}

// NewOrderHandler construye el handler.
func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

func (h *OrderHandler) usecase(c *fiber.Ctx) *usecase.OrderUseCase {
	handle := HandleFromCtx(c)
	if handle == nil {
		return nil
	}
	return usecase.NewOrderUseCase(handle.Orders, handle.Sequence, handle.Companies, handle.Drivers)
}

// Create crea una orden con el siguiente número del secuencial del tenant.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == "" || in.Origin == "" || in.Destination == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id, origin y destination son requeridos"})
	}
	out, err := uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una orden por ID.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
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

// GetByNumber obtiene una orden por su número.
func (h *OrderHandler) GetByNumber(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	number, err := strconv.ParseInt(c.Params("number"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de orden inválido"})
	}
	out, err := uc.GetByOrderNumber(c.UserContext(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista órdenes del tenant.
func (h *OrderHandler) List(c *fiber.Ctx) error {
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

// Update actualiza una orden no congelada.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una orden.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if err := uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
