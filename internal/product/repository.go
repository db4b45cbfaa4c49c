package product

import (
	"context"

	"github.com/arvela/catalog-service/internal/model"
	"github.com/arvela/catalog-service/internal/product/dto"
	"github.com/arvela/catalog-service/internal/query"
)

// Repository is the product store. Variants are embedded in their product and
// have no record of their own. Absent ids are signalled with nil/false, never
// errors.
type Repository interface {
	Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	FindAll(ctx context.Context, filters *query.Filters) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, patch *dto.UpdateProductInput) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)

	AddVariant(ctx context.Context, productID string, input *dto.CreateVariantInput) (*model.Variant, error)
	// Variants returns nil (not an empty slice) when the product itself does
	// not exist.
	Variants(ctx context.Context, productID string) ([]model.Variant, error)
	UpdateVariant(ctx context.Context, productID, variantID string, patch *dto.UpdateVariantInput) (*model.Variant, error)
	DeleteVariant(ctx context.Context, productID, variantID string) (bool, error)

	// Snapshot is the read surface for the query engine: a detached copy of
	// every record in insertion order.
	Snapshot(ctx context.Context) ([]model.Product, error)

	// Clear drops every record. Test isolation hook.
	Clear()
}
