package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de solo lectura del catálogo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Reporte de stock bajo
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de stock bajo"  default(10)
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	// Un umbral explícito se respeta tal cual (cero o negativo producen un
	// reporte vacío); solo su ausencia activa el umbral del catálogo.
	var requested *int
	if raw := c.Query("threshold"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Threshold must be an integer")
		}
		requested = &threshold
	}
	out, err := h.uc.LowStock(c.Context(), requested)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// InventorySummary godoc
// @Summary      Resumen de inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ItemResponse
// @Router       /api/v1/reports/inventory-summary [get]
func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	out, err := h.uc.InventorySummary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// PriceRange godoc
// @Summary      Estadísticas de precios
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ItemResponse
// @Router       /api/v1/reports/price-range [get]
func (h *ReportHandler) PriceRange(c *fiber.Ctx) error {
	out, err := h.uc.PriceRange(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}
