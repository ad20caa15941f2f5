package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc       *usecase.CategoryUseCase
	validate *Validator
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, validate *Validator) *CategoryHandler {
	return &CategoryHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validate.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemResponse{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría (hex de 24 caracteres)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "category"); err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// List godoc
// @Summary      Listar categorías activas
// @Tags         categories
// @Produce      json
// @Param        page       query  int     false  "Página"           default(1)
// @Param        limit      query  int     false  "Tamaño de página" default(10)
// @Param        search     query  string  false  "Busca en nombre y descripción"
// @Param        sortBy     query  string  false  "Campo de orden: name | createdAt"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {object}  dto.ListResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	q := dto.ListCategoriesQuery{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ListResponse{
		Success:    true,
		Count:      len(out.Items),
		Pagination: dto.Pagination{Page: out.Page, Limit: out.Limit, Total: out.Total, Pages: out.Pages},
		Data:       out.Items,
	})
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "category"); err != nil {
		return err
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validate.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "La categoría tiene productos asociados"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "category"); err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}
