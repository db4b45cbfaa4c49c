package usecase_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/apperr"
	"github.com/arvela/catalog-service/internal/inventory"
	inventoryrepo "github.com/arvela/catalog-service/internal/inventory/repository"
	"github.com/arvela/catalog-service/internal/product"
	"github.com/arvela/catalog-service/internal/product/dto"
	productrepo "github.com/arvela/catalog-service/internal/product/repository"
	"github.com/arvela/catalog-service/internal/product/usecase"
	"github.com/arvela/catalog-service/internal/query"
)

func intPtr(i int) *int { return &i }

func newFixture(t *testing.T) (product.UseCase, inventory.Repository) {
	t.Helper()
	prodRepo := productrepo.NewMemoryRepository()
	invRepo := inventoryrepo.NewMemoryRepository(5)
	return usecase.NewProductUseCase(prodRepo, invRepo, zap.NewNop()), invRepo
}

func TestCreateProductWithInitialStock(t *testing.T) {
	uc, invRepo := newFixture(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:              "Widget",
		Price:             10,
		InitialStock:      intPtr(40),
		LowStockThreshold: intPtr(8),
	})
	require.NoError(t, err)

	item, err := invRepo.FindProductLevel(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 40, item.Quantity)
	assert.Equal(t, 8, item.LowStockThreshold)
}

func TestCreateProductWithoutInitialStock(t *testing.T) {
	uc, invRepo := newFixture(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Widget", Price: 10})
	require.NoError(t, err)

	item, err := invRepo.FindProductLevel(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, item, "no inventory record unless initial stock is given")
}

func TestGetProductNotFound(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.GetProduct(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeleteProductCascadesToInventory(t *testing.T) {
	uc, invRepo := newFixture(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:         "Widget",
		Price:        10,
		InitialStock: intPtr(5),
	})
	require.NoError(t, err)
	_, err = uc.AddVariant(ctx, p.ID, &dto.CreateVariantInput{
		Name:         "Small",
		Attributes:   map[string]interface{}{"size": "S"},
		InitialStock: intPtr(3),
	})
	require.NoError(t, err)

	other, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:         "Keeper",
		Price:        1,
		InitialStock: intPtr(2),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, p.ID))

	remaining, err := invRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ProductID)
}

func TestAddVariantCreatesInventory(t *testing.T) {
	uc, invRepo := newFixture(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Shirt", Price: 25})
	require.NoError(t, err)

	v, err := uc.AddVariant(ctx, p.ID, &dto.CreateVariantInput{
		Name:         "Small",
		Attributes:   map[string]interface{}{"size": "S"},
		InitialStock: intPtr(7),
	})
	require.NoError(t, err)

	item, err := invRepo.FindByVariant(ctx, p.ID, v.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 7, item.Quantity)
}

func TestAddVariantMissingProduct(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.AddVariant(context.Background(), "nope", &dto.CreateVariantInput{
		Name:       "S",
		Attributes: map[string]interface{}{},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListVariantsMissingProduct(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.ListVariants(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeleteVariantNotFound(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Shirt", Price: 25})
	require.NoError(t, err)

	err = uc.DeleteVariant(ctx, p.ID, "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestSearchProductsBlankQuery(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Widget", Price: 10})
	require.NoError(t, err)

	for _, q := range []string{"", "   "} {
		results, err := uc.SearchProducts(ctx, q, nil)
		require.NoError(t, err)
		require.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestSearchProductsWithSort(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Widget Max", Price: 30})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Widget Mini", Price: 10})
	require.NoError(t, err)

	results, err := uc.SearchProducts(ctx, "widget", &query.Options{Sort: "price:asc"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Widget Mini", results[0].Name)
	assert.Equal(t, "Widget Max", results[1].Name)
}
