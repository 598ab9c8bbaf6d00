package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/analytics"
)

// DashboardHandler maneja el endpoint de estadísticas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard-stats [get]
//
// Las estadísticas se calculan en paralelo; las consultas que fallen o
// expiren quedan en cero, por lo que la respuesta siempre es 200.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetStats(c.Context()))
}
