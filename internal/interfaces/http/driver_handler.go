package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
)

// DriverHandler maneja las peticiones HTTP para conductores del tenant.
type DriverHandler struct{}

// NewDriverHandler construye el handler.
func NewDriverHandler() *DriverHandler {
	return &DriverHandler{}
}

func (h *DriverHandler) usecase(c *fiber.Ctx) *usecase.DriverUseCase {
	handle := HandleFromCtx(c)
	if handle == nil {
		return nil
	}
	return usecase.NewDriverUseCase(handle.Drivers, handle.Companies)
}

// Create registra un conductor.
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.CreateDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Document == "" || in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, document y company_id son requeridos"})
	}
	out, err := uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un conductor por ID.
func (h *DriverHandler) GetByID(c *fiber.Ctx) error {
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

// List lista conductores; con company_id filtra por empresa.
func (h *DriverHandler) List(c *fiber.Ctx) error {
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

// Update actualiza un conductor.
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.UpdateDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un conductor.
func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if err := uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
