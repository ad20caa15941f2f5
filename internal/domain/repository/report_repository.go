package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// InventoryCounts conteos globales del resumen de inventario.
type InventoryCounts struct {
	TotalProducts      int // productos activos
	OutOfStockProducts int // activos sin ninguna variante con inventario > 0
	LowStockProducts   int // activos con alguna variante con inventario en (0, umbral]
}

// CategoryInventoryStat agregado de inventario por categoría.
type CategoryInventoryStat struct {
	CategoryID     string
	Name           string
	ProductCount   int
	TotalInventory int
}

// PriceOverall estadísticas globales de precio base sobre productos activos.
type PriceOverall struct {
	MinPrice      decimal.Decimal
	MaxPrice      decimal.Decimal
	AvgPrice      decimal.Decimal
	TotalProducts int
}

// CategoryPriceStat estadísticas de precio base agrupadas por categoría.
type CategoryPriceStat struct {
	Category     string
	MinPrice     decimal.Decimal
	MaxPrice     decimal.Decimal
	AvgPrice     decimal.Decimal
	ProductCount int
}

// ReportRepository consultas de solo lectura para los reportes del catálogo.
type ReportRepository interface {
	// LowStockProducts devuelve los productos activos cuyo inventario total
	// es menor al umbral o que tienen alguna variante por debajo de él,
	// con variantes y nombre de categoría poblados.
	LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error)
	InventoryCounts(ctx context.Context, lowStockThreshold int) (InventoryCounts, error)
	CategoryInventoryStats(ctx context.Context) ([]CategoryInventoryStat, error)
	// PriceOverall devuelve (nil, nil) cuando no hay productos activos.
	PriceOverall(ctx context.Context) (*PriceOverall, error)
	CategoryPriceStats(ctx context.Context) ([]CategoryPriceStat, error)
}
