package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Carga datos de ejemplo en el catálogo: categorías y productos con variantes,
// útiles para demos y para probar los reportes (el iPhone trae una variante
// con 8 unidades, por debajo del umbral de stock bajo por defecto).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(txRunner, categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, categoryRepo)

	categories := []dto.CreateCategoryRequest{
		{Name: "Electronics", Description: "Electronic devices and accessories"},
		{Name: "Clothing", Description: "Apparel and fashion items"},
		{Name: "Home & Garden", Description: "Home improvement and gardening supplies"},
		{Name: "Books", Description: "Physical and digital books"},
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, in := range categories {
		out, err := categoryUC.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("category", in.Name).Msg("crear categoría")
		}
		categoryIDs[in.Name] = out.ID
		log.Info().Str("id", out.ID).Str("name", out.Name).Msg("categoría creada")
	}

	price := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

	products := []dto.CreateProductRequest{
		{
			Name:        "iPhone 15 Pro",
			Description: "Latest iPhone with titanium design and A17 Pro chip",
			Category:    categoryIDs["Electronics"],
			Brand:       "Apple",
			BasePrice:   price(999.99),
			Tags:        []string{"smartphone", "apple", "5g"},
			Variants: []dto.VariantRequest{
				{Name: "128GB - Natural Titanium", Color: "Natural Titanium", SKU: "IP15P-128-NT", Price: price(999.99), Inventory: 25},
				{Name: "256GB - Blue Titanium", Color: "Blue Titanium", SKU: "IP15P-256-BT", Price: price(1099.99), Inventory: 15},
				{Name: "512GB - Black Titanium", Color: "Black Titanium", SKU: "IP15P-512-BK", Price: price(1299.99), Inventory: 8},
			},
		},
		{
			Name:         "Classic Cotton T-Shirt",
			Description:  "Comfortable everyday t-shirt made of 100% cotton",
			Category:     categoryIDs["Clothing"],
			Brand:        "BasicWear",
			BasePrice:    price(19.99),
			Discount:     price(10),
			DiscountType: "percentage",
			Tags:         []string{"tshirt", "cotton", "casual"},
			Variants: []dto.VariantRequest{
				{Name: "Small - White", Size: "S", Color: "White", SKU: "TS-S-WH", Price: price(19.99), Inventory: 50},
				{Name: "Medium - White", Size: "M", Color: "White", SKU: "TS-M-WH", Price: price(19.99), Inventory: 45},
				{Name: "Large - Black", Size: "L", Color: "Black", SKU: "TS-L-BK", Price: price(19.99), Inventory: 30},
			},
		},
		{
			Name:        "Garden Tool Set",
			Description: "Five-piece stainless steel gardening tool set with wooden handles",
			Category:    categoryIDs["Home & Garden"],
			BasePrice:   price(49.99),
			Tags:        []string{"garden", "tools"},
			Variants: []dto.VariantRequest{
				{Name: "Standard Set", SKU: "GTS-STD", Price: price(49.99), Inventory: 12},
			},
		},
		{
			Name:         "The Pragmatic Programmer",
			Description:  "Classic software engineering book, 20th anniversary edition",
			Category:     categoryIDs["Books"],
			BasePrice:    price(39.99),
			Discount:     price(5),
			DiscountType: "fixed",
			Tags:         []string{"programming", "software"},
			Variants: []dto.VariantRequest{
				{Name: "Hardcover", SKU: "TPP-HC", Price: price(39.99), Inventory: 20},
				{Name: "Paperback", SKU: "TPP-PB", Price: price(29.99), Inventory: 0},
			},
		},
	}

	for _, in := range products {
		out, err := productUC.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("product", in.Name).Msg("crear producto")
		}
		log.Info().
			Str("id", out.ID).
			Str("slug", out.Slug).
			Int("variants", len(out.Variants)).
			Msg("producto creado")
	}

	log.Info().Msg("datos de ejemplo cargados")
}
