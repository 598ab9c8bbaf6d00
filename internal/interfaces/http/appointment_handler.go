package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/appointments"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
)

// AppointmentHandler maneja las peticiones HTTP de citas (protegido).
type AppointmentHandler struct {
	uc *appointments.UseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *appointments.UseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// List GET /api/appointments
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Agendar cita
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "Datos de la cita"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cita (puede cerrar una venta)
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la cita"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "Campos de la cita"
// @Success      200   {object}  dto.UpdateAppointmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return appointmentError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cita eliminada"})
}

func appointmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
	default:
		return internalError(c, err)
	}
}
