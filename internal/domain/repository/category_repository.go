package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryFilter criterios opcionales para el listado de categorías.
type CategoryFilter struct {
	Search    string // texto libre sobre nombre y descripción
	SortBy    string // name, createdAt (por defecto name)
	SortOrder string // asc | desc
	Limit     int
	Offset    int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las lecturas pueblan ProductCount; GetByID devuelve (nil, nil) si no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// List devuelve solo categorías activas.
	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)
	// CountActive cuenta todas las categorías activas, sin aplicar filtros.
	CountActive(ctx context.Context) (int, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
