package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura del catálogo, calculados de forma
// síncrona por petición (sin caché).
type ReportUseCase struct {
	reports          repository.ReportRepository
	defaultThreshold int
}

// NewReportUseCase construye el caso de uso. defaultThreshold se usa cuando
// la petición no trae umbral (valor de catálogo: 10).
func NewReportUseCase(reports repository.ReportRepository, defaultThreshold int) *ReportUseCase {
	if defaultThreshold <= 0 {
		defaultThreshold = 10
	}
	return &ReportUseCase{reports: reports, defaultThreshold: defaultThreshold}
}

// LowStock arma el reporte de stock bajo: lista de productos calificados y
// lista aplanada con una entrada por variante por debajo del umbral.
// requested nil significa que la petición no trajo umbral y aplica el del
// catálogo; un valor explícito se usa tal cual, incluso cero o negativo
// (la consulta corre igual y produce un reporte vacío).
func (uc *ReportUseCase) LowStock(ctx context.Context, requested *int) (*dto.LowStockReport, error) {
	threshold := uc.defaultThreshold
	if requested != nil {
		threshold = *requested
	}
	products, err := uc.reports.LowStockProducts(ctx, threshold)
	if err != nil {
		return nil, err
	}

	report := &dto.LowStockReport{
		Threshold: threshold,
		Products:  make([]dto.ProductResponse, 0, len(products)),
		Variants:  []dto.LowStockVariant{},
	}
	for _, p := range products {
		report.Products = append(report.Products, *toProductResponse(p))
		for i := range p.Variants {
			v := &p.Variants[i]
			if v.Inventory >= threshold {
				continue
			}
			report.Variants = append(report.Variants, dto.LowStockVariant{
				ProductID:    p.ID,
				ProductName:  p.Name,
				Category:     dto.CategoryRef{ID: p.CategoryID, Name: p.CategoryName},
				Variant:      toVariantResponse(v),
				CurrentStock: v.Inventory,
			})
		}
	}
	report.TotalLowStockProducts = len(report.Products)
	report.TotalLowStockVariants = len(report.Variants)
	return report, nil
}

// InventorySummary calcula los conteos globales y el agregado por categoría.
// inStock se deriva como total − agotados.
func (uc *ReportUseCase) InventorySummary(ctx context.Context) (*dto.InventorySummary, error) {
	counts, err := uc.reports.InventoryCounts(ctx, uc.defaultThreshold)
	if err != nil {
		return nil, err
	}
	stats, err := uc.reports.CategoryInventoryStats(ctx)
	if err != nil {
		return nil, err
	}

	categoryStats := make([]dto.CategoryInventoryStat, 0, len(stats))
	for _, s := range stats {
		categoryStats = append(categoryStats, dto.CategoryInventoryStat{
			ID:             s.CategoryID,
			Name:           s.Name,
			ProductCount:   s.ProductCount,
			TotalInventory: s.TotalInventory,
		})
	}
	return &dto.InventorySummary{
		TotalProducts:      counts.TotalProducts,
		OutOfStockProducts: counts.OutOfStockProducts,
		LowStockProducts:   counts.LowStockProducts,
		InStockProducts:    counts.TotalProducts - counts.OutOfStockProducts,
		CategoryStats:      categoryStats,
	}, nil
}

// PriceRange arma las estadísticas de precio base globales y por categoría.
func (uc *ReportUseCase) PriceRange(ctx context.Context) (*dto.PriceRangeReport, error) {
	overall, err := uc.reports.PriceOverall(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.reports.CategoryPriceStats(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.PriceRangeReport{ByCategory: []dto.CategoryPriceStats{}}
	if overall != nil {
		report.Overall = dto.PriceStats{
			MinPrice:      overall.MinPrice,
			MaxPrice:      overall.MaxPrice,
			AvgPrice:      overall.AvgPrice,
			TotalProducts: overall.TotalProducts,
		}
	} else {
		// Catálogo vacío: el contrato expone un objeto vacío, no null.
		report.Overall = struct{}{}
	}
	for _, s := range byCategory {
		report.ByCategory = append(report.ByCategory, dto.CategoryPriceStats{
			Category:     s.Category,
			MinPrice:     s.MinPrice,
			MaxPrice:     s.MaxPrice,
			AvgPrice:     s.AvgPrice,
			ProductCount: s.ProductCount,
		})
	}
	return report, nil
}
