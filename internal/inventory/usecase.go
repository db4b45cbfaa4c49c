package inventory

import (
	"context"

	"github.com/arvela/catalog-service/internal/inventory/dto"
	"github.com/arvela/catalog-service/internal/model"
)

// UseCase wraps the inventory store with referential checks against the
// product store and produces the enriched low-stock report.
type UseCase interface {
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	// GetProductInventory always returns a slice; with includeVariants it
	// holds every record for the product, otherwise just the product-level
	// one.
	GetProductInventory(ctx context.Context, productID string, includeVariants bool) ([]model.Inventory, error)
	GetVariantInventory(ctx context.Context, productID, variantID string) (*model.Inventory, error)
	UpsertInventory(ctx context.Context, input *dto.UpsertInventoryInput) (*model.Inventory, error)
	AdjustQuantity(ctx context.Context, productID string, variantID *string, delta int) (*model.Inventory, error)
	LowStockReport(ctx context.Context) ([]dto.LowStockItem, error)
}
