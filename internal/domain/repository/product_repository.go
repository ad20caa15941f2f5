package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductFilter criterios opcionales para el listado de productos.
// Los punteros distinguen "no filtrar" de "filtrar por cero".
type ProductFilter struct {
	Search     string // texto libre sobre nombre y descripción
	CategoryID string
	MinPrice   *decimal.Decimal // inclusivo
	MaxPrice   *decimal.Decimal // inclusivo
	InStock    bool             // true: al menos una variante con inventario > 0
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve solo productos activos, ordenados por fecha de creación
	// descendente, con el nombre de la categoría poblado.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// CountActive cuenta todos los productos activos, sin aplicar filtros.
	CountActive(ctx context.Context) (int, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// UpdateVariantInventory fija el inventario de una variante concreta.
	// Devuelve domain.ErrVariantNotFound si la variante no pertenece al producto.
	UpdateVariantInventory(ctx context.Context, productID, variantID string, quantity int) error
	// CountByCategory cuenta los productos que referencian una categoría.
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}
