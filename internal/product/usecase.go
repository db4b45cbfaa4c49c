package product

import (
	"context"

	"github.com/arvela/catalog-service/internal/model"
	"github.com/arvela/catalog-service/internal/product/dto"
	"github.com/arvela/catalog-service/internal/query"
)

// UseCase wraps the product store with the cross-entity rules: initial stock
// on creation spawns inventory records, and deleting a product cascades to
// every inventory record that references it.
type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *query.Filters) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	AddVariant(ctx context.Context, productID string, input *dto.CreateVariantInput) (*model.Variant, error)
	ListVariants(ctx context.Context, productID string) ([]model.Variant, error)
	UpdateVariant(ctx context.Context, productID, variantID string, input *dto.UpdateVariantInput) (*model.Variant, error)
	DeleteVariant(ctx context.Context, productID, variantID string) error

	SearchProducts(ctx context.Context, queryText string, opts *query.Options) ([]model.Product, error)
}
