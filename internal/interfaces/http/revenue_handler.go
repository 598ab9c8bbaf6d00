package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/revenue"
)

// reportGenerator es el contrato mínimo para el PDF del reporte de
// ingresos. Lo implementa pdf.RevenueReportGenerator.
type reportGenerator interface {
	GenerateRevenueReport(appName string, records []*dto.MonthlyRevenueResponse) ([]byte, error)
}

// RevenueHandler maneja el ledger mensual: consulta, ventas recientes,
// recalculación y reporte PDF.
type RevenueHandler struct {
	uc      *revenue.LedgerUseCase
	report  reportGenerator
	appName string
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *revenue.LedgerUseCase, report reportGenerator, appName string) *RevenueHandler {
	return &RevenueHandler{uc: uc, report: report, appName: appName}
}

// List godoc
// @Summary      Ingresos mensuales (últimos 12 meses con ventas)
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MonthlyRevenueResponse
// @Router       /api/monthly-revenue [get]
func (h *RevenueHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// RecentSales godoc
// @Summary      Últimas 10 ventas
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/recent-sales [get]
func (h *RevenueHandler) RecentSales(c *fiber.Ctx) error {
	list, err := h.uc.RecentSales(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Recalculate godoc
// @Summary      Reconstruir el ledger de ingresos desde las citas
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/recalculate-revenue [post]
func (h *RevenueHandler) Recalculate(c *fiber.Ctx) error {
	if err := h.uc.Recalculate(c.Context()); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Ingresos mensuales recalculados"})
}

// Report GET /api/reports/revenue, descarga el PDF del ledger mensual.
func (h *RevenueHandler) Report(c *fiber.Ctx) error {
	records, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	pdfBytes, err := h.report.GenerateRevenueReport(h.appName, records)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ingresos-mensuales.pdf"`)
	return c.Send(pdfBytes)
}
