package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/transport"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := t.Context()

	cat, err := svc.CreateCategory(ctx, transport.CreateCategoryRequest{Name: "supplements"})
	require.NoError(t, err)

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		CategoryID: &cat.ID,
		Name:       "folic acid",
		Price:      12.5,
		Count:      30,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, prod.ID)
	require.NotNil(t, prod.CategoryID)
	assert.Equal(t, cat.ID, *prod.CategoryID)
	assert.Zero(t, prod.AverageRating)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := t.Context()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Price: 10})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "x", Price: -1})
	assert.ErrorIs(t, err, ErrValidation)

	bogus := uuid.New()
	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name: "x", Price: 1, CategoryID: &bogus,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_PatchProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := t.Context()

	prod := createTestProduct(t, r, "folic acid", 12.5)

	newName := "folic acid 400mcg"
	newPrice := 14.0
	featured := true
	patched, err := svc.PatchProduct(ctx, transport.PatchProductRequest{
		Name:     &newName,
		Price:    &newPrice,
		Featured: &featured,
	}, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, patched.Name)
	assert.InDelta(t, newPrice, patched.Price, 1e-9)
	assert.True(t, patched.Featured)

	empty := ""
	_, err = svc.PatchProduct(ctx, transport.PatchProductRequest{Name: &empty}, prod.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_GetFeaturedProducts(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := t.Context()

	createTestProduct(t, r, "plain", 10)

	for _, name := range []string{"highlight a", "highlight b"} {
		_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
			Name: name, Price: 20, Featured: true,
		})
		require.NoError(t, err)
	}

	got, err := svc.GetFeaturedProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, p.Featured)
	}
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := t.Context()

	prod := createTestProduct(t, r, "folic acid", 12.5)
	require.NoError(t, svc.DeleteProduct(ctx, prod.ID))

	_, err := svc.GetProduct(ctx, prod.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteProduct(ctx, prod.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := t.Context()

	_, err := svc.CreateCategory(ctx, transport.CreateCategoryRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	cat, err := svc.CreateCategory(ctx, transport.CreateCategoryRequest{Name: "tests"})
	require.NoError(t, err)

	desc := "at-home test kits"
	patched, err := svc.PatchCategory(ctx, transport.PatchCategoryRequest{Description: &desc}, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, desc, patched.Description)

	cats, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))
	_, err = svc.GetCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
