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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.IsActive,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría con su conteo de productos. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.is_active, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count
		FROM categories c
		WHERE c.id = $1`
	var cat entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&cat.ID, &cat.Name, &cat.Description, &cat.IsActive,
		&cat.CreatedAt, &cat.UpdatedAt, &cat.ProductCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &cat, nil
}

// List devuelve categorías activas con búsqueda, orden configurable y paginación.
func (r *CategoryRepo) List(ctx context.Context, f repository.CategoryFilter) ([]*entity.Category, error) {
	conds := []string{"c.is_active = TRUE"}
	args := []any{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(c.name ILIKE $%d OR c.description ILIKE $%d)", n, n))
	}

	// Columnas de orden permitidas; cualquier otro valor cae a name.
	sortCol := "c.name"
	switch f.SortBy {
	case "createdAt", "created_at":
		sortCol = "c.created_at"
	case "", "name":
	}
	dir := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		dir = "DESC"
	}

	args = append(args, f.Limit, f.Offset)
	query := `
		SELECT c.id, c.name, c.description, c.is_active, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count
		FROM categories c
		WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, dir, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var cat entity.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.IsActive,
			&cat.CreatedAt, &cat.UpdatedAt, &cat.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &cat)
	}
	return list, rows.Err()
}

// CountActive cuenta todas las categorías activas sin aplicar filtros.
func (r *CategoryRepo) CountActive(ctx context.Context) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE is_active = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.IsActive, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete elimina una categoría por ID. La guardia de productos asociados
// corre en el caso de uso, dentro de la misma transacción.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
