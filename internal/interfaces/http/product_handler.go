package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	validate *Validator
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, validate *Validator) *ProductHandler {
	return &ProductHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validateCreateProduct(h.validate, in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemResponse{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto (hex de 24 caracteres)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "product"); err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        page      query  int     false  "Página"             default(1)
// @Param        limit     query  int     false  "Tamaño de página"   default(10)
// @Param        search    query  string  false  "Busca en nombre y descripción"
// @Param        category  query  string  false  "Filtrar por ID de categoría"
// @Param        minPrice  query  number  false  "Precio base mínimo"
// @Param        maxPrice  query  number  false  "Precio base máximo"
// @Param        inStock   query  bool    false  "Solo productos con stock"
// @Success      200  {object}  dto.ListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := dto.ListProductsQuery{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		InStock:  c.QueryBool("inStock"),
	}
	if q.Category != "" {
		if err := requireObjectID(c, q.Category, "category"); err != nil {
			return err
		}
	}
	var err error
	if q.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid minPrice value")
	}
	if q.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid maxPrice value")
	}

	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ListResponse{
		Success:    true,
		Count:      len(out.Items),
		Pagination: dto.Pagination{Page: out.Page, Limit: out.Limit, Total: out.Total},
		Data:       out.Items,
	})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "product"); err != nil {
		return err
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validateUpdateProduct(h.validate, in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "product"); err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}

// UpdateInventory godoc
// @Summary      Actualizar inventario de una variante
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Variante y cantidad"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id}/inventory [put]
func (h *ProductHandler) UpdateInventory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireObjectID(c, id, "product"); err != nil {
		return err
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validate.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.UpdateInventory(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ItemResponse{Success: true, Data: out})
}

// queryDecimal lee un parámetro numérico opcional de la query.
func queryDecimal(c *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
