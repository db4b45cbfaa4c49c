package inventory

import (
	"context"

	"github.com/arvela/catalog-service/internal/inventory/dto"
	"github.com/arvela/catalog-service/internal/model"
)

// Repository is the inventory store. It maintains two invariants on its own:
// at most one record per (productId, variantId) pair, and quantity never goes
// negative through AdjustQuantity. Referential checks against products and
// variants belong to the use case layer.
type Repository interface {
	// CreateOrUpdate inserts a record, or patches the existing one when the
	// (ProductID, VariantID) pair is already present.
	CreateOrUpdate(ctx context.Context, input *dto.UpsertInventoryInput) (*model.Inventory, error)
	FindAll(ctx context.Context) ([]model.Inventory, error)
	FindByID(ctx context.Context, id string) (*model.Inventory, error)
	// FindByProduct returns every record for the product, product-level and
	// variant-level alike.
	FindByProduct(ctx context.Context, productID string) ([]model.Inventory, error)
	// FindProductLevel returns the single record with no variant, or nil.
	FindProductLevel(ctx context.Context, productID string) (*model.Inventory, error)
	FindByVariant(ctx context.Context, productID, variantID string) (*model.Inventory, error)
	Update(ctx context.Context, id string, patch *dto.UpdateInventoryInput) (*model.Inventory, error)
	// AdjustQuantity applies a delta, clamping the result at zero. This is
	// the sole clamping point; Update takes quantities verbatim.
	AdjustQuantity(ctx context.Context, productID string, variantID *string, delta int) (*model.Inventory, error)
	// LowStock returns records with quantity at or below their threshold.
	LowStock(ctx context.Context) ([]model.Inventory, error)
	Delete(ctx context.Context, id string) (bool, error)

	// Clear drops every record. Test isolation hook.
	Clear()
}
