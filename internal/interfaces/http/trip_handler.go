package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
)

// TripHandler maneja las peticiones HTTP para viajes históricos.
type TripHandler struct{}

// NewTripHandler construye el handler.
func NewTripHandler() *TripHandler {
	return &TripHandler{}
}

func (h *TripHandler) usecase(c *fiber.Ctx) *usecase.TripUseCase {
	handle := HandleFromCtx(c)
	if handle == nil {
		return nil
	}
	return usecase.NewTripUseCase(handle.Trips, handle.Drivers)
}

// Create registra un viaje histórico.
func (h *TripHandler) Create(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	var in dto.CreateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DriverID == "" || in.CompanyID == "" || in.Origin == "" || in.Destination == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "driver_id, company_id, origin y destination son requeridos"})
	}
	out, err := uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un viaje por ID.
func (h *TripHandler) GetByID(c *fiber.Ctx) error {
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

// List lista viajes; con driver_id filtra por conductor.
func (h *TripHandler) List(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if driverID := c.Query("driver_id"); driverID != "" {
		out, err := uc.ListByDriver(c.UserContext(), driverID)
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

// Delete elimina un viaje.
func (h *TripHandler) Delete(c *fiber.Ctx) error {
	uc := h.usecase(c)
	if uc == nil {
		return missingHandle(c)
	}
	if err := uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
