package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

// ProductUseCase casos de uso CRUD para productos, incluida la actualización
// de inventario por variante. Las escrituras de producto+variantes pasan por
// TxRunner para que el reemplazo del conjunto de variantes sea atómico.
type ProductUseCase struct {
	txRunner   TxRunner
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, products: products, categories: categories}
}

// Create crea un producto nuevo con slug derivado del nombre y
// sub-identificadores de variante asignados en este momento.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categories.GetByID(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:           objectid.New(),
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.Category,
		CategoryName: category.Name,
		Brand:        in.Brand,
		BasePrice:    in.BasePrice,
		Discount:     in.Discount,
		DiscountType: in.DiscountType,
		Images:       orEmpty(in.Images),
		Tags:         orEmpty(in.Tags),
		IsActive:     boolOr(in.IsActive, true),
		IsFeatured:   boolOr(in.IsFeatured, false),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.DiscountType == "" {
		product.DiscountType = entity.DiscountTypePercentage
	}
	product.RefreshSlug()
	product.Variants = buildVariants(in.Variants, nil, now)

	err = uc.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.CategoryRepository) error {
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve productos activos filtrados y paginados. El total de la
// paginación se calcula sobre todos los productos activos, sin aplicar los
// filtros de la consulta (comportamiento heredado del catálogo, documentado).
func (uc *ProductUseCase) List(ctx context.Context, q dto.ListProductsQuery) (*dto.ProductListResult, error) {
	page, limit := normalizePage(q.Page, q.Limit)

	filter := repository.ProductFilter{
		Search:     q.Search,
		CategoryID: q.Category,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		InStock:    q.InStock,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	list, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.products.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResult{Items: items, Page: page, Limit: limit, Total: total}, nil
}

// Update aplica un reemplazo parcial con revalidación: solo los campos
// presentes cambian; el slug se regenera si cambió el nombre; un conjunto de
// variantes no-nil sustituye al actual conservando los sub-IDs provistos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if in.Name != nil && *in.Name != product.Name {
		product.Name = *in.Name
		product.RefreshSlug()
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil && *in.Category != product.CategoryID {
		category, err := uc.categories.GetByID(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.BasePrice != nil {
		product.BasePrice = *in.BasePrice
	}
	if in.Discount != nil {
		product.Discount = *in.Discount
	}
	if in.DiscountType != nil {
		product.DiscountType = *in.DiscountType
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}

	now := time.Now()
	product.UpdatedAt = now
	if in.Variants != nil {
		existing := make(map[string]*entity.Variant, len(product.Variants))
		for i := range product.Variants {
			existing[product.Variants[i].ID] = &product.Variants[i]
		}
		product.Variants = buildVariants(in.Variants, existing, now)
	}

	err = uc.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.CategoryRepository) error {
		return products.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Sin cascada ni verificación referencial.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// UpdateInventory fija el inventario de una variante, ajustando cantidades
// negativas a cero, y devuelve el producto resultante.
func (uc *ProductUseCase) UpdateInventory(ctx context.Context, productID string, in dto.UpdateInventoryRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	variant := product.Variant(in.VariantID)
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}

	quantity := in.Quantity
	if quantity < 0 {
		quantity = 0
	}
	if err := uc.products.UpdateVariantInventory(ctx, productID, in.VariantID, quantity); err != nil {
		return nil, err
	}
	variant.Inventory = quantity
	return toProductResponse(product), nil
}

// buildVariants arma el conjunto de variantes de una petición. Las variantes
// con ID existente conservan sub-identificador y fecha de creación; las
// nuevas reciben un uuid en este momento.
func buildVariants(in []dto.VariantRequest, existing map[string]*entity.Variant, now time.Time) []entity.Variant {
	variants := make([]entity.Variant, 0, len(in))
	for _, v := range in {
		variant := entity.Variant{
			ID:        v.ID,
			Name:      v.Name,
			Color:     v.Color,
			Size:      v.Size,
			SKU:       v.SKU,
			Price:     v.Price,
			Inventory: v.Inventory,
			IsActive:  boolOr(v.IsActive, true),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if variant.ID == "" {
			variant.ID = uuid.New().String()
		} else if prev, ok := existing[variant.ID]; ok {
			variant.CreatedAt = prev.CreatedAt
		}
		variants = append(variants, variant)
	}
	return variants
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	variants := make([]dto.VariantResponse, 0, len(p.Variants))
	for i := range p.Variants {
		variants = append(variants, toVariantResponse(&p.Variants[i]))
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       dto.CategoryRef{ID: p.CategoryID, Name: p.CategoryName},
		Brand:          p.Brand,
		BasePrice:      p.BasePrice,
		Discount:       p.Discount,
		DiscountType:   p.DiscountType,
		Variants:       variants,
		Images:         orEmpty(p.Images),
		Tags:           orEmpty(p.Tags),
		IsActive:       p.IsActive,
		IsFeatured:     p.IsFeatured,
		Slug:           p.Slug,
		FinalPrice:     p.FinalPrice(),
		TotalInventory: p.TotalInventory(),
		InStock:        p.InStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toVariantResponse(v *entity.Variant) dto.VariantResponse {
	return dto.VariantResponse{
		ID:        v.ID,
		Name:      v.Name,
		Color:     v.Color,
		Size:      v.Size,
		SKU:       v.SKU,
		Price:     v.Price,
		Inventory: v.Inventory,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = 10
	case limit > 100:
		limit = 100
	}
	return page, limit
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
