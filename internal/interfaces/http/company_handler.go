package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para empresas del tenant.
// El caso de uso se construye por petición a partir del handle resuelto.
type CompanyHandler struct{}

// NewCompanyHandler construye el handler.
func NewCompanyHandler() *CompanyHandler {
	return &CompanyHandler{}
}

func (h *CompanyHandler) usecase(c *fiber.Ctx) *usecase.CompanyUseCase {
	handle := HandleFromCtx(c)
	if handle == nil {
		return nil
	}
	return usecase.NewCompanyUseCase(handle.Companies)
}

// Create crea una empresa en el esquema del tenant.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.NIT == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y nit son requeridos"})
	}
	out, err := uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una empresa por ID.
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
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

// List lista empresas del tenant.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
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

// Update actualiza una empresa.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una empresa.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if err := uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
