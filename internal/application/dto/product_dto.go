package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantRequest entrada para una variante dentro de crear/actualizar producto.
// ID solo viene en actualizaciones, para conservar el sub-identificador estable.
type VariantRequest struct {
	ID        string          `json:"id" validate:"omitempty,uuid4"`
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Color     string          `json:"color" validate:"omitempty,max=50"`
	Size      string          `json:"size" validate:"omitempty,max=50"`
	SKU       string          `json:"sku" validate:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price"`
	Inventory int             `json:"inventory" validate:"gte=0"`
	IsActive  *bool           `json:"isActive"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=2,max=100"`
	Description  string           `json:"description" validate:"required,min=10,max=2000"`
	Category     string           `json:"category" validate:"required,len=24,hexadecimal"`
	Brand        string           `json:"brand" validate:"omitempty,max=50"`
	BasePrice    decimal.Decimal  `json:"basePrice"`
	Discount     decimal.Decimal  `json:"discount"`
	DiscountType string           `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	Variants     []VariantRequest `json:"variants" validate:"omitempty,dive"`
	Images       []string         `json:"images"`
	Tags         []string         `json:"tags"`
	IsActive     *bool            `json:"isActive"`
	IsFeatured   *bool            `json:"isFeatured"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo parcial).
// Variants no-nil reemplaza el conjunto completo de variantes.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description  *string          `json:"description" validate:"omitempty,min=10,max=2000"`
	Category     *string          `json:"category" validate:"omitempty,len=24,hexadecimal"`
	Brand        *string          `json:"brand" validate:"omitempty,max=50"`
	BasePrice    *decimal.Decimal `json:"basePrice"`
	Discount     *decimal.Decimal `json:"discount"`
	DiscountType *string          `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	Variants     []VariantRequest `json:"variants" validate:"omitempty,dive"`
	Images       []string         `json:"images"`
	Tags         []string         `json:"tags"`
	IsActive     *bool            `json:"isActive"`
	IsFeatured   *bool            `json:"isFeatured"`
}

// UpdateInventoryRequest entrada para fijar el stock de una variante.
// Una cantidad negativa se ajusta a cero.
type UpdateInventoryRequest struct {
	VariantID string `json:"variantId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CategoryRef referencia de categoría embebida en respuestas de producto.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Inventory int             `json:"inventory"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductResponse salida de un producto, con los campos derivados calculados
// (finalPrice, totalInventory, inStock) igual que los virtuals del catálogo.
type ProductResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       CategoryRef       `json:"category"`
	Brand          string            `json:"brand,omitempty"`
	BasePrice      decimal.Decimal   `json:"basePrice"`
	Discount       decimal.Decimal   `json:"discount"`
	DiscountType   string            `json:"discountType"`
	Variants       []VariantResponse `json:"variants"`
	Images         []string          `json:"images"`
	Tags           []string          `json:"tags"`
	IsActive       bool              `json:"isActive"`
	IsFeatured     bool              `json:"isFeatured"`
	Slug           string            `json:"slug"`
	FinalPrice     decimal.Decimal   `json:"finalPrice"`
	TotalInventory int               `json:"totalInventory"`
	InStock        bool              `json:"inStock"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ProductListResult resultado interno del listado (el handler arma la envoltura).
type ProductListResult struct {
	Items []ProductResponse
	Page  int
	Limit int
	Total int
}

// ListProductsQuery parámetros del listado de productos.
type ListProductsQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
}
