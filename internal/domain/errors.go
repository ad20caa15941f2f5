package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrVariantNotFound  = errors.New("variante no encontrada")
	ErrInvalidID        = errors.New("identificador con formato inválido")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicateSKU     = errors.New("SKU duplicado")
	ErrDuplicateSlug    = errors.New("slug duplicado")
)

// CategoryInUseError bloquea el borrado de una categoría con productos asociados.
// Conserva el conteo exacto para que el cliente sepa cuántos productos la referencian.
type CategoryInUseError struct {
	ProductCount int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("la categoría tiene %d productos asociados", e.ProductCount)
}
