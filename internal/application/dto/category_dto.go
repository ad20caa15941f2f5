package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (reemplazo parcial).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryResponse salida de una categoría con su conteo de productos derivado.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryListResult resultado interno del listado (el handler arma la envoltura).
type CategoryListResult struct {
	Items []CategoryResponse
	Page  int
	Limit int
	Total int
	Pages int
}

// ListCategoriesQuery parámetros del listado de categorías.
type ListCategoriesQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}
