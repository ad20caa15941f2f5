package http_test

import (
	"context"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: repositorios en memoria y aplicación Fiber completa
// ──────────────────────────────────────────────────────────────────────────────

type stubTxRunner struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(products repository.ProductRepository, categories repository.CategoryRepository) error) error {
	return fn(r.products, r.categories)
}

type stubProductRepo struct {
	items map[string]*entity.Product
	order []string
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{items: map[string]*entity.Product{}}
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Variants = append([]entity.Variant(nil), p.Variants...)
	cp.Images = append([]string(nil), p.Images...)
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.items[p.ID] = copyProduct(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

func (r *stubProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
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
		list = append(list, copyProduct(p))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if f.Offset >= len(list) {
		return nil, nil
	}
	list = list[f.Offset:]
	if f.Limit > 0 && f.Limit < len(list) {
		list = list[:f.Limit]
	}
	return list, nil
}

func (r *stubProductRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, p := range r.items {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.items[p.ID] = copyProduct(p)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
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

func (r *stubProductRepo) UpdateVariantInventory(_ context.Context, productID, variantID string, quantity int) error {
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

func (r *stubProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

type stubCategoryRepo struct {
	items map[string]*entity.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) List(_ context.Context, f repository.CategoryFilter) ([]*entity.Category, error) {
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

func (r *stubCategoryRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, c := range r.items {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

// stubReportRepo calcula los agregados de reportes sobre el repositorio de
// productos en memoria, imitando las consultas SQL del adaptador real.
type stubReportRepo struct {
	products   *stubProductRepo
	categories *stubCategoryRepo
}

func (r *stubReportRepo) active() []*entity.Product {
	var list []*entity.Product
	for _, id := range r.products.order {
		if p := r.products.items[id]; p.IsActive {
			list = append(list, copyProduct(p))
		}
	}
	return list
}

func (r *stubReportRepo) LowStockProducts(_ context.Context, threshold int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.active() {
		qualifies := p.TotalInventory() < threshold
		for i := range p.Variants {
			if p.Variants[i].Inventory < threshold {
				qualifies = true
				break
			}
		}
		if qualifies {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *stubReportRepo) InventoryCounts(_ context.Context, lowStockThreshold int) (repository.InventoryCounts, error) {
	var counts repository.InventoryCounts
	for _, p := range r.active() {
		counts.TotalProducts++
		if !p.InStock() {
			counts.OutOfStockProducts++
			continue
		}
		for i := range p.Variants {
			inv := p.Variants[i].Inventory
			if inv > 0 && inv <= lowStockThreshold {
				counts.LowStockProducts++
				break
			}
		}
	}
	return counts, nil
}

func (r *stubReportRepo) CategoryInventoryStats(_ context.Context) ([]repository.CategoryInventoryStat, error) {
	byID := map[string]*repository.CategoryInventoryStat{}
	var order []string
	for _, p := range r.active() {
		stat, ok := byID[p.CategoryID]
		if !ok {
			stat = &repository.CategoryInventoryStat{CategoryID: p.CategoryID, Name: p.CategoryName}
			byID[p.CategoryID] = stat
			order = append(order, p.CategoryID)
		}
		stat.ProductCount++
		stat.TotalInventory += p.TotalInventory()
	}
	out := make([]repository.CategoryInventoryStat, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

func (r *stubReportRepo) PriceOverall(_ context.Context) (*repository.PriceOverall, error) {
	active := r.active()
	if len(active) == 0 {
		return nil, nil
	}
	overall := &repository.PriceOverall{
		MinPrice: active[0].BasePrice,
		MaxPrice: active[0].BasePrice,
	}
	sum := decimal.Zero
	for _, p := range active {
		overall.TotalProducts++
		sum = sum.Add(p.BasePrice)
		if p.BasePrice.LessThan(overall.MinPrice) {
			overall.MinPrice = p.BasePrice
		}
		if p.BasePrice.GreaterThan(overall.MaxPrice) {
			overall.MaxPrice = p.BasePrice
		}
	}
	overall.AvgPrice = sum.Div(decimal.NewFromInt(int64(overall.TotalProducts))).Round(2)
	return overall, nil
}

func (r *stubReportRepo) CategoryPriceStats(_ context.Context) ([]repository.CategoryPriceStat, error) {
	byName := map[string]*repository.CategoryPriceStat{}
	sums := map[string]decimal.Decimal{}
	var order []string
	for _, p := range r.active() {
		stat, ok := byName[p.CategoryName]
		if !ok {
			stat = &repository.CategoryPriceStat{
				Category: p.CategoryName,
				MinPrice: p.BasePrice,
				MaxPrice: p.BasePrice,
			}
			byName[p.CategoryName] = stat
			order = append(order, p.CategoryName)
		}
		stat.ProductCount++
		sums[p.CategoryName] = sums[p.CategoryName].Add(p.BasePrice)
		if p.BasePrice.LessThan(stat.MinPrice) {
			stat.MinPrice = p.BasePrice
		}
		if p.BasePrice.GreaterThan(stat.MaxPrice) {
			stat.MaxPrice = p.BasePrice
		}
	}
	out := make([]repository.CategoryPriceStat, 0, len(order))
	for _, name := range order {
		stat := byName[name]
		stat.AvgPrice = sums[name].Div(decimal.NewFromInt(int64(stat.ProductCount))).Round(2)
		out = append(out, *stat)
	}
	return out, nil
}

// testEnv aplicación Fiber completa sobre repositorios en memoria.
type testEnv struct {
	app        *fiber.App
	products   *stubProductRepo
	categories *stubCategoryRepo
}

func buildTestApp() *testEnv {
	products := newStubProductRepo()
	categories := newStubCategoryRepo()
	tx := &stubTxRunner{products: products, categories: categories}
	reports := &stubReportRepo{products: products, categories: categories}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Internal server error",
			})
		},
	})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(tx, products, categories),
		CategoryUC: usecase.NewCategoryUseCase(tx, categories, products),
		ReportUC:   usecase.NewReportUseCase(reports, 10),
		AppName:    "catalogo-api-test",
		Version:    "test",
	})
	return &testEnv{app: app, products: products, categories: categories}
}
