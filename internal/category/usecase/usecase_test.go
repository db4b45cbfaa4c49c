package usecase_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/apperr"
	"github.com/arvela/catalog-service/internal/category"
	categorydto "github.com/arvela/catalog-service/internal/category/dto"
	categoryrepo "github.com/arvela/catalog-service/internal/category/repository"
	"github.com/arvela/catalog-service/internal/category/usecase"
	"github.com/arvela/catalog-service/internal/product"
	productdto "github.com/arvela/catalog-service/internal/product/dto"
	productrepo "github.com/arvela/catalog-service/internal/product/repository"
)

func newFixture(t *testing.T) (category.UseCase, category.Repository, product.Repository) {
	t.Helper()
	catRepo := categoryrepo.NewMemoryRepository()
	prodRepo := productrepo.NewMemoryRepository()
	return usecase.NewCategoryUseCase(catRepo, prodRepo, zap.NewNop()), catRepo, prodRepo
}

func TestCreateCategoryWithParent(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	parent, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Root"})
	require.NoError(t, err)

	child, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{
		Name:     "Child",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)
}

func TestCreateCategoryRejectsMissingParent(t *testing.T) {
	uc, _, _ := newFixture(t)
	missing := "does-not-exist"

	_, err := uc.CreateCategory(context.Background(), &categorydto.CreateCategoryInput{
		Name:     "Orphan",
		ParentID: &missing,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidRelation))
}

func TestUpdateCategoryRejectsSelfParent(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Loop"})
	require.NoError(t, err)

	_, err = uc.UpdateCategory(ctx, cat.ID, &categorydto.UpdateCategoryInput{ParentID: &cat.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidRelation))
}

func TestGetCategoryNotFound(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.GetCategory(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeleteCategoryBlockedBySubcategories(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	parent, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Root"})
	require.NoError(t, err)
	child, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Child", ParentID: &parent.ID})
	require.NoError(t, err)

	err = uc.DeleteCategory(ctx, parent.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	require.NoError(t, uc.DeleteCategory(ctx, child.ID))
	require.NoError(t, uc.DeleteCategory(ctx, parent.ID))
}

func TestDeleteCategoryNotFound(t *testing.T) {
	uc, _, _ := newFixture(t)

	err := uc.DeleteCategory(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCategoryPath(t *testing.T) {
	uc, _, _ := newFixture(t)
	ctx := context.Background()

	root, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Root"})
	require.NoError(t, err)
	leaf, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Leaf", ParentID: &root.ID})
	require.NoError(t, err)

	path, err := uc.CategoryPath(ctx, leaf.ID)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, root.ID, path[0].ID)
	assert.Equal(t, leaf.ID, path[1].ID)

	_, err = uc.CategoryPath(ctx, "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCategoryProducts(t *testing.T) {
	uc, _, prodRepo := newFixture(t)
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, &categorydto.CreateCategoryInput{Name: "Kitchen"})
	require.NoError(t, err)

	_, err = prodRepo.Create(ctx, &productdto.CreateProductInput{
		Name: "Kettle", Price: 20, CategoryIDs: []string{cat.ID},
	})
	require.NoError(t, err)
	_, err = prodRepo.Create(ctx, &productdto.CreateProductInput{
		Name: "Lamp", Price: 30, CategoryIDs: []string{"elsewhere"},
	})
	require.NoError(t, err)

	products, err := uc.CategoryProducts(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kettle", products[0].Name)

	_, err = uc.CategoryProducts(ctx, "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
