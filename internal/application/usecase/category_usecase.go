package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

// CategoryUseCase casos de uso CRUD para categorías. El borrado verifica la
// ausencia de productos asociados y elimina dentro de una misma transacción,
// cerrando la ventana entre la verificación y el borrado.
type CategoryUseCase struct {
	txRunner   TxRunner
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(txRunner TxRunner, categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{txRunner: txRunner, categories: categories, products: products}
}

// Create crea una categoría nueva (activa por defecto).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:          objectid.New(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría con su conteo de productos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return toCategoryResponse(category), nil
}

// List devuelve categorías activas con búsqueda, orden y paginación.
// El total de la paginación cuenta todas las categorías activas sin filtros.
func (uc *CategoryUseCase) List(ctx context.Context, q dto.ListCategoriesQuery) (*dto.CategoryListResult, error) {
	page, limit := normalizePage(q.Page, q.Limit)

	filter := repository.CategoryFilter{
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	list, err := uc.categories.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.categories.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return &dto.CategoryListResult{Items: items, Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

// Update aplica un reemplazo parcial sobre la categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría solo si ningún producto la referencia.
// Verificación y borrado corren en la misma transacción; si hay productos
// asociados devuelve CategoryInUseError con el conteo exacto.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		count, err := products.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &domain.CategoryInUseError{ProductCount: count}
		}
		return categories.Delete(ctx, id)
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		IsActive:     c.IsActive,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
