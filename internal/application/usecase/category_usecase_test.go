package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

type categoryFixture struct {
	uc         *usecase.CategoryUseCase
	products   *memProductRepo
	categories *memCategoryRepo
}

func newCategoryFixture() *categoryFixture {
	products := newMemProductRepo()
	categories := newMemCategoryRepo()
	tx := &fakeTxRunner{products: products, categories: categories}
	return &categoryFixture{
		uc:         usecase.NewCategoryUseCase(tx, categories, products),
		products:   products,
		categories: categories,
	}
}

func TestCategoryCreate(t *testing.T) {
	f := newCategoryFixture()

	out, err := f.uc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "Electronics",
		Description: "Electronic devices and accessories",
	})
	require.NoError(t, err)

	assert.True(t, objectid.IsValid(out.ID))
	assert.Equal(t, "Electronics", out.Name)
	assert.True(t, out.IsActive, "las categorías nacen activas")
	assert.Equal(t, 0, out.ProductCount)
}

func TestCategoryGetByID_NoEncontrada(t *testing.T) {
	f := newCategoryFixture()
	_, err := f.uc.GetByID(context.Background(), objectid.New())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	f := newCategoryFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	desc := "Physical and digital books"
	inactive := false
	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{
		Description: &desc,
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Books", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, desc, out.Description)
	assert.False(t, out.IsActive)
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	f := newCategoryFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vacía"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))

	_, err = f.uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryDelete_ConProductosAsociados(t *testing.T) {
	f := newCategoryFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.products.Create(context.Background(), &entity.Product{
			ID:         objectid.New(),
			Name:       "Producto",
			CategoryID: created.ID,
			BasePrice:  decimal.NewFromInt(10),
			IsActive:   true,
		}))
	}

	err = f.uc.Delete(context.Background(), created.ID)
	var inUse *domain.CategoryInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 3, inUse.ProductCount, "el error debe llevar el conteo exacto")

	// La categoría debe seguir existiendo tras el rechazo.
	_, err = f.uc.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestCategoryDelete_NoEncontrada(t *testing.T) {
	f := newCategoryFixture()
	assert.ErrorIs(t, f.uc.Delete(context.Background(), objectid.New()), domain.ErrCategoryNotFound)
}

func TestCategoryList_Paginacion(t *testing.T) {
	f := newCategoryFixture()
	names := []string{"Audio", "Books", "Cameras", "Drones", "Electronics"}
	for _, n := range names {
		_, err := f.uc.Create(context.Background(), dto.CreateCategoryRequest{Name: n})
		require.NoError(t, err)
	}

	out, err := f.uc.List(context.Background(), dto.ListCategoriesQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Cameras", out.Items[0].Name)
	assert.Equal(t, "Drones", out.Items[1].Name)
	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 3, out.Pages, "pages = ceil(total/limit)")
}

func TestCategoryList_Busqueda(t *testing.T) {
	f := newCategoryFixture()
	_, err := f.uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	out, err := f.uc.List(context.Background(), dto.ListCategoriesQuery{Search: "electr"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Electronics", out.Items[0].Name)
	assert.Equal(t, 2, out.Total, "el total ignora la búsqueda")
}
