package dto

import "github.com/shopspring/decimal"

// LowStockVariant entrada aplanada del reporte de stock bajo: una fila por
// variante por debajo del umbral, con el contexto de su producto.
type LowStockVariant struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Category     CategoryRef     `json:"category"`
	Variant      VariantResponse `json:"variant"`
	CurrentStock int             `json:"currentStock"`
}

// LowStockReport reporte de productos y variantes por debajo del umbral.
type LowStockReport struct {
	Threshold             int               `json:"threshold"`
	TotalLowStockProducts int               `json:"totalLowStockProducts"`
	TotalLowStockVariants int               `json:"totalLowStockVariants"`
	Products              []ProductResponse `json:"products"`
	Variants              []LowStockVariant `json:"variants"`
}

// CategoryInventoryStat agregado por categoría del resumen de inventario.
type CategoryInventoryStat struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProductCount   int    `json:"productCount"`
	TotalInventory int    `json:"totalInventory"`
}

// InventorySummary resumen global de inventario.
type InventorySummary struct {
	TotalProducts      int                     `json:"totalProducts"`
	OutOfStockProducts int                     `json:"outOfStockProducts"`
	LowStockProducts   int                     `json:"lowStockProducts"`
	InStockProducts    int                     `json:"inStockProducts"`
	CategoryStats      []CategoryInventoryStat `json:"categoryStats"`
}

// PriceStats estadísticas globales de precio base.
type PriceStats struct {
	MinPrice      decimal.Decimal `json:"minPrice"`
	MaxPrice      decimal.Decimal `json:"maxPrice"`
	AvgPrice      decimal.Decimal `json:"avgPrice"`
	TotalProducts int             `json:"totalProducts"`
}

// CategoryPriceStats estadísticas de precio base por categoría.
type CategoryPriceStats struct {
	Category     string          `json:"category"`
	MinPrice     decimal.Decimal `json:"minPrice"`
	MaxPrice     decimal.Decimal `json:"maxPrice"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	ProductCount int             `json:"productCount"`
}

// PriceRangeReport reporte de rangos de precio. Overall es un objeto vacío
// cuando no hay productos activos (mismo contrato que el catálogo original).
type PriceRangeReport struct {
	Overall    any                  `json:"overall"`
	ByCategory []CategoryPriceStats `json:"byCategory"`
}
