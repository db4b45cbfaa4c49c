package category

import (
	"context"

	"github.com/arvela/catalog-service/internal/category/dto"
	"github.com/arvela/catalog-service/internal/model"
)

// UseCase wraps the category store with the cross-entity rules: parent
// references must resolve and never point at the category itself, and a
// category with subcategories cannot be deleted.
type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id string, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CategoryPath(ctx context.Context, id string) ([]model.Category, error)
	CategoryProducts(ctx context.Context, id string) ([]model.Product, error)
}
