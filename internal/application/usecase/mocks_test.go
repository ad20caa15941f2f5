package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Dobles de prueba en memoria para los puertos de persistencia.
// Reproducen el contrato de los adaptadores PostgreSQL: GetByID devuelve
// (nil, nil) si no existe, Delete devuelve el error de dominio, etc.

type fakeTxRunner struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(products repository.ProductRepository, categories repository.CategoryRepository) error) error {
	return fn(r.products, r.categories)
}

// ── productos ─────────────────────────────────────────────────────────────────

type memProductRepo struct {
	items map[string]*entity.Product
	order []string // IDs en orden de inserción
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: map[string]*entity.Product{}}
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Variants = append([]entity.Variant(nil), p.Variants...)
	cp.Images = append([]string(nil), p.Images...)
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.items[product.ID] = cloneProduct(product)
	r.order = append(r.order, product.ID)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *memProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range r.order {
		p := r.items[id]
		if !p.IsActive {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) &&
				!strings.Contains(strings.ToLower(p.Description), s) {
				continue
			}
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.MinPrice != nil && p.BasePrice.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.BasePrice.GreaterThan(*f.MaxPrice) {
			continue
		}
		if f.InStock && !p.InStock() {
			continue
		}
		list = append(list, cloneProduct(p))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if f.Offset >= len(list) {
		return nil, nil
	}
	list = list[f.Offset:]
	if f.Limit > 0 && f.Limit < len(list) {
		list = list[:f.Limit]
	}
	return list, nil
}

func (r *memProductRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, p := range r.items {
		if p.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.items[product.ID] = cloneProduct(product)
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memProductRepo) UpdateVariantInventory(_ context.Context, productID, variantID string, quantity int) error {
	p, ok := r.items[productID]
	if !ok {
		return domain.ErrVariantNotFound
	}
	v := p.Variant(variantID)
	if v == nil {
		return domain.ErrVariantNotFound
	}
	v.Inventory = quantity
	return nil
}

func (r *memProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	count := 0
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// ── categorías ────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	items map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	cp := *category
	r.items[category.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) List(_ context.Context, f repository.CategoryFilter) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.items {
		if !c.IsActive {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(c.Name), s) &&
				!strings.Contains(strings.ToLower(c.Description), s) {
				continue
			}
		}
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if f.Offset >= len(list) {
		return nil, nil
	}
	list = list[f.Offset:]
	if f.Limit > 0 && f.Limit < len(list) {
		list = list[:f.Limit]
	}
	return list, nil
}

func (r *memCategoryRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, c := range r.items {
		if c.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *memCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.items[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	cp := *category
	r.items[category.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

// ── reportes ──────────────────────────────────────────────────────────────────

// memReportRepo reproduce la regla de calificación de stock bajo del adaptador
// SQL sobre una lista de productos en memoria; los agregados restantes se
// configuran directamente en el doble.
type memReportRepo struct {
	products      []*entity.Product
	lastThreshold int

	counts         repository.InventoryCounts
	inventoryStats []repository.CategoryInventoryStat
	priceOverall   *repository.PriceOverall
	priceStats     []repository.CategoryPriceStat
}

func (r *memReportRepo) LowStockProducts(_ context.Context, threshold int) ([]*entity.Product, error) {
	r.lastThreshold = threshold
	var list []*entity.Product
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		qualifies := p.TotalInventory() < threshold
		for i := range p.Variants {
			if p.Variants[i].Inventory < threshold {
				qualifies = true
				break
			}
		}
		if qualifies {
			list = append(list, cloneProduct(p))
		}
	}
	return list, nil
}

func (r *memReportRepo) InventoryCounts(_ context.Context, lowStockThreshold int) (repository.InventoryCounts, error) {
	r.lastThreshold = lowStockThreshold
	return r.counts, nil
}

func (r *memReportRepo) CategoryInventoryStats(_ context.Context) ([]repository.CategoryInventoryStat, error) {
	return r.inventoryStats, nil
}

func (r *memReportRepo) PriceOverall(_ context.Context) (*repository.PriceOverall, error) {
	return r.priceOverall, nil
}

func (r *memReportRepo) CategoryPriceStats(_ context.Context) ([]repository.CategoryPriceStat, error) {
	return r.priceStats, nil
}
