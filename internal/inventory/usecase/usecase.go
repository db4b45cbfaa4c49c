package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/apperr"
	"github.com/arvela/catalog-service/internal/inventory"
	"github.com/arvela/catalog-service/internal/inventory/dto"
	"github.com/arvela/catalog-service/internal/model"
	"github.com/arvela/catalog-service/internal/product"
)

type inventoryUseCase struct {
	repo     inventory.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, products product.Repository, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID string, includeVariants bool) ([]model.Inventory, error) {
	if _, err := uc.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	if includeVariants {
		items, err := uc.repo.FindByProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errors.WithMessagef(apperr.ErrNotFound, "no inventory found for product with id %s", productID)
		}
		return items, nil
	}

	item, err := uc.repo.FindProductLevel(ctx, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no inventory found for product with id %s", productID)
	}
	return []model.Inventory{*item}, nil
}

func (uc *inventoryUseCase) GetVariantInventory(ctx context.Context, productID, variantID string) (*model.Inventory, error) {
	p, err := uc.requireProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !hasVariant(p, variantID) {
		return nil, errors.WithMessagef(apperr.ErrNotFound,
			"no variant found with id %s for product %s", variantID, productID)
	}

	item, err := uc.repo.FindByVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no inventory found for variant with id %s", variantID)
	}
	return item, nil
}

// UpsertInventory creates or patches the record for the given pair after
// checking that the product, and the variant when given, actually exist.
func (uc *inventoryUseCase) UpsertInventory(ctx context.Context, input *dto.UpsertInventoryInput) (*model.Inventory, error) {
	if err := uc.checkPair(ctx, input.ProductID, input.VariantID); err != nil {
		return nil, err
	}

	item, err := uc.repo.CreateOrUpdate(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("inventory upserted",
		zap.String("product_id", input.ProductID),
		zap.Int("quantity", item.Quantity))
	return item, nil
}

func (uc *inventoryUseCase) AdjustQuantity(ctx context.Context, productID string, variantID *string, delta int) (*model.Inventory, error) {
	if err := uc.checkPair(ctx, productID, variantID); err != nil {
		return nil, err
	}

	item, err := uc.repo.AdjustQuantity(ctx, productID, variantID, delta)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no inventory found for product with id %s", productID)
	}
	return item, nil
}

// LowStockReport joins each low-stock record back to its product and variant
// for display. Records whose product has been deleted in the meantime are
// passed through unenriched rather than dropped.
func (uc *inventoryUseCase) LowStockReport(ctx context.Context) ([]dto.LowStockItem, error) {
	items, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]dto.LowStockItem, 0, len(items))
	for _, item := range items {
		entry := dto.LowStockItem{Inventory: item}

		p, err := uc.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			entry.ProductName = p.Name
			entry.SKU = p.SKU
			if item.VariantID != nil {
				for i := range p.Variants {
					if p.Variants[i].ID == *item.VariantID {
						entry.VariantName = p.Variants[i].Name
						entry.VariantAttributes = p.Variants[i].Attributes
						break
					}
				}
			}
		}
		report = append(report, entry)
	}
	return report, nil
}

func (uc *inventoryUseCase) requireProduct(ctx context.Context, productID string) (*model.Product, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no product found with id %s", productID)
	}
	return p, nil
}

// checkPair validates the (product, variant) reference behind a mutation: a
// missing product is NotFound, a variant that is not the product's is an
// invalid relation.
func (uc *inventoryUseCase) checkPair(ctx context.Context, productID string, variantID *string) error {
	p, err := uc.requireProduct(ctx, productID)
	if err != nil {
		return err
	}
	if variantID != nil && !hasVariant(p, *variantID) {
		return errors.WithMessagef(apperr.ErrInvalidRelation,
			"variant %s does not belong to product %s", *variantID, productID)
	}
	return nil
}

func hasVariant(p *model.Product, variantID string) bool {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return true
		}
	}
	return false
}
