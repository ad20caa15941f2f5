package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes del catálogo.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// LowStockProducts devuelve los productos activos con inventario total por
// debajo del umbral o con alguna variante por debajo de él. Un producto sin
// variantes tiene inventario total 0 y por tanto siempre califica.
func (r *ReportRepo) LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = TRUE
		  AND (
			EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.inventory < $1)
			OR COALESCE((SELECT SUM(v.inventory) FROM product_variants v WHERE v.product_id = p.id), 0) < $1
		  )
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStockProducts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("reports.LowStockProducts scan: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := NewProductRepository(r.pool).attachVariants(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// InventoryCounts calcula los conteos globales del resumen de inventario:
// agotado = ninguna variante con inventario > 0;
// stock bajo = alguna variante con inventario en (0, umbral].
func (r *ReportRepo) InventoryCounts(ctx context.Context, lowStockThreshold int) (repository.InventoryCounts, error) {
	const query = `
	SELECT
	    COUNT(*) AS total,
	    COUNT(*) FILTER (WHERE NOT EXISTS (
	        SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.inventory > 0
	    )) AS out_of_stock,
	    COUNT(*) FILTER (WHERE EXISTS (
	        SELECT 1 FROM product_variants v
	        WHERE v.product_id = p.id AND v.inventory > 0 AND v.inventory <= $1
	    )) AS low_stock
	FROM products p
	WHERE p.is_active = TRUE`

	var counts repository.InventoryCounts
	err := r.pool.QueryRow(ctx, query, lowStockThreshold).Scan(
		&counts.TotalProducts, &counts.OutOfStockProducts, &counts.LowStockProducts,
	)
	if err != nil {
		return repository.InventoryCounts{}, fmt.Errorf("reports.InventoryCounts: %w", err)
	}
	return counts, nil
}

// CategoryInventoryStats agrega conteo de productos e inventario sumado por categoría.
func (r *ReportRepo) CategoryInventoryStats(ctx context.Context) ([]repository.CategoryInventoryStat, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COUNT(DISTINCT p.id)          AS product_count,
	    COALESCE(SUM(v.inventory), 0) AS total_inventory
	FROM categories c
	LEFT JOIN products p         ON p.category_id = c.id
	LEFT JOIN product_variants v ON v.product_id  = p.id
	GROUP BY c.id, c.name
	ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.CategoryInventoryStats: %w", err)
	}
	defer rows.Close()

	var stats []repository.CategoryInventoryStat
	for rows.Next() {
		var s repository.CategoryInventoryStat
		if err := rows.Scan(&s.CategoryID, &s.Name, &s.ProductCount, &s.TotalInventory); err != nil {
			return nil, fmt.Errorf("reports.CategoryInventoryStats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// PriceOverall devuelve min/max/promedio del precio base y el total de
// productos activos. (nil, nil) cuando el catálogo está vacío.
func (r *ReportRepo) PriceOverall(ctx context.Context) (*repository.PriceOverall, error) {
	const query = `
	SELECT
	    COALESCE(MIN(base_price), 0)          AS min_price,
	    COALESCE(MAX(base_price), 0)          AS max_price,
	    COALESCE(ROUND(AVG(base_price), 2), 0) AS avg_price,
	    COUNT(*)                               AS total_products
	FROM products
	WHERE is_active = TRUE`

	var overall repository.PriceOverall
	err := r.pool.QueryRow(ctx, query).Scan(
		&overall.MinPrice, &overall.MaxPrice, &overall.AvgPrice, &overall.TotalProducts,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.PriceOverall: %w", err)
	}
	if overall.TotalProducts == 0 {
		return nil, nil
	}
	return &overall, nil
}

// CategoryPriceStats agrupa las estadísticas de precio base por nombre de categoría.
func (r *ReportRepo) CategoryPriceStats(ctx context.Context) ([]repository.CategoryPriceStat, error) {
	const query = `
	SELECT
	    c.name                     AS category,
	    MIN(p.base_price)          AS min_price,
	    MAX(p.base_price)          AS max_price,
	    ROUND(AVG(p.base_price), 2) AS avg_price,
	    COUNT(*)                   AS product_count
	FROM products p
	JOIN categories c ON c.id = p.category_id
	WHERE p.is_active = TRUE
	GROUP BY c.name
	ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.CategoryPriceStats: %w", err)
	}
	defer rows.Close()

	var stats []repository.CategoryPriceStat
	for rows.Next() {
		var s repository.CategoryPriceStat
		if err := rows.Scan(&s.Category, &s.MinPrice, &s.MaxPrice, &s.AvgPrice, &s.ProductCount); err != nil {
			return nil, fmt.Errorf("reports.CategoryPriceStats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
