package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.name, p.description, p.category_id, p.brand, p.base_price,
	p.discount, p.discount_type, p.images, p.tags, p.is_active, p.is_featured, p.slug,
	p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el producto y sus variantes. Con variantes debe ejecutarse
// dentro de una transacción (TxRunner) para que la escritura sea atómica.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category_id, brand, base_price, discount, discount_type, images, tags, is_active, is_featured, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID, product.Brand,
		product.BasePrice, product.Discount, product.DiscountType, product.Images, product.Tags,
		product.IsActive, product.IsFeatured, product.Slug, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return mapProductWriteError(err, "insert product")
	}
	return r.insertVariants(ctx, product)
}

// GetByID obtiene un producto con variantes y nombre de categoría. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.attachVariants(ctx, []*entity.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// List devuelve productos activos aplicando los filtros del query layer:
// búsqueda libre (ILIKE sobre nombre y descripción), categoría, rango de
// precio base inclusivo y disponibilidad. Orden fijo: created_at DESC.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	conds := []string{"p.is_active = TRUE"}
	args := []any{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("p.base_price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("p.base_price <= $%d", len(args)))
	}
	if f.InStock {
		conds = append(conds, "EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.inventory > 0)")
	}

	args = append(args, f.Limit, f.Offset)
	query := `
		SELECT ` + productColumns + `, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachVariants(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// CountActive cuenta todos los productos activos sin aplicar filtros
// (el total de paginación del listado se calcula sobre este conteo).
func (r *ProductRepo) CountActive(ctx context.Context) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Update reemplaza el documento completo: actualiza la fila del producto y
// sustituye el conjunto de variantes conservando los sub-identificadores
// provistos. Debe ejecutarse dentro de una transacción (TxRunner).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, brand = $5,
			base_price = $6, discount = $7, discount_type = $8, images = $9, tags = $10,
			is_active = $11, is_featured = $12, slug = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID, product.Brand,
		product.BasePrice, product.Discount, product.DiscountType, product.Images, product.Tags,
		product.IsActive, product.IsFeatured, product.Slug, product.UpdatedAt,
	)
	if err != nil {
		return mapProductWriteError(err, "update product")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	return r.insertVariants(ctx, product)
}

// Delete elimina un producto; las variantes caen por ON DELETE CASCADE.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// UpdateVariantInventory fija el inventario de una variante en una sola
// sentencia; la atomicidad por fila del motor cubre escrituras concurrentes.
func (r *ProductRepo) UpdateVariantInventory(ctx context.Context, productID, variantID string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product_variants SET inventory = $3, updated_at = now() WHERE product_id = $1 AND id = $2`,
		productID, variantID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update variant inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrVariantNotFound
	}
	return nil
}

// CountByCategory cuenta los productos que referencian la categoría (guardia de borrado).
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

func (r *ProductRepo) insertVariants(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO product_variants (id, product_id, position, name, color, size, sku, price, inventory, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for i := range product.Variants {
		v := &product.Variants[i]
		_, err := r.q.Exec(ctx, query,
			v.ID, product.ID, i, v.Name, v.Color, v.Size, v.SKU,
			v.Price, v.Inventory, v.IsActive, v.CreatedAt, v.UpdatedAt,
		)
		if err != nil {
			if uniqueConstraint(err) == "product_variants_sku_key" {
				return domain.ErrDuplicateSKU
			}
			return fmt.Errorf("insert variant: %w", err)
		}
	}
	return nil
}

// attachVariants carga las variantes de un lote de productos en una sola
// consulta y las reparte respetando el orden por posición.
func (r *ProductRepo) attachVariants(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, len(products))
	byID := make(map[string]*entity.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, name, color, size, sku, price, inventory, is_active, created_at, updated_at
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY product_id, position`, ids)
	if err != nil {
		return fmt.Errorf("load variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v entity.Variant
		var productID string
		if err := rows.Scan(&v.ID, &productID, &v.Name, &v.Color, &v.Size, &v.SKU,
			&v.Price, &v.Inventory, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return fmt.Errorf("scan variant: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	return rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Brand, &p.BasePrice,
		&p.Discount, &p.DiscountType, &p.Images, &p.Tags, &p.IsActive, &p.IsFeatured,
		&p.Slug, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func mapProductWriteError(err error, op string) error {
	switch uniqueConstraint(err) {
	case "products_slug_key":
		return domain.ErrDuplicateSlug
	case "product_variants_sku_key":
		return domain.ErrDuplicateSKU
	}
	if isForeignKeyViolation(err) {
		return domain.ErrCategoryNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
