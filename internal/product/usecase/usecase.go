package usecase

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/apperr"
	"github.com/arvela/catalog-service/internal/inventory"
	invdto "github.com/arvela/catalog-service/internal/inventory/dto"
	"github.com/arvela/catalog-service/internal/model"
	"github.com/arvela/catalog-service/internal/product"
	"github.com/arvela/catalog-service/internal/product/dto"
	"github.com/arvela/catalog-service/internal/query"
)

type productUseCase struct {
	repo      product.Repository
	inventory inventory.Repository
	logger    *zap.Logger
}

func NewProductUseCase(repo product.Repository, inv inventory.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		inventory: inv,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	p, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.InitialStock != nil {
		if _, err := uc.inventory.CreateOrUpdate(ctx, &invdto.UpsertInventoryInput{
			ProductID:         p.ID,
			Quantity:          input.InitialStock,
			LowStockThreshold: input.LowStockThreshold,
		}); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("product created", zap.String("id", p.ID), zap.String("sku", p.SKU))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no product found with id %s", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *query.Filters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no product found with id %s", id)
	}
	return p, nil
}

// DeleteProduct removes the product and cascades to every inventory record
// that references it, product-level and variant-level alike.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.WithMessagef(apperr.ErrNotFound, "no product found with id %s", id)
	}

	items, err := uc.inventory.FindByProduct(ctx, id)
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := uc.inventory.Delete(ctx, item.ID); err != nil {
			return err
		}
	}

	uc.logger.Info("product deleted", zap.String("id", id), zap.Int("inventory_records_removed", len(items)))
	return nil
}

func (uc *productUseCase) AddVariant(ctx context.Context, productID string, input *dto.CreateVariantInput) (*model.Variant, error) {
	v, err := uc.repo.AddVariant(ctx, productID, input)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no product found with id %s", productID)
	}

	if input.InitialStock != nil {
		if _, err := uc.inventory.CreateOrUpdate(ctx, &invdto.UpsertInventoryInput{
			ProductID:         productID,
			VariantID:         &v.ID,
			Quantity:          input.InitialStock,
			LowStockThreshold: input.LowStockThreshold,
		}); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("variant added", zap.String("product_id", productID), zap.String("variant_id", v.ID))
	return v, nil
}

func (uc *productUseCase) ListVariants(ctx context.Context, productID string) ([]model.Variant, error) {
	variants, err := uc.repo.Variants(ctx, productID)
	if err != nil {
		return nil, err
	}
	if variants == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no product found with id %s", productID)
	}
	return variants, nil
}

func (uc *productUseCase) UpdateVariant(ctx context.Context, productID, variantID string, input *dto.UpdateVariantInput) (*model.Variant, error) {
	v, err := uc.repo.UpdateVariant(ctx, productID, variantID, input)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound,
			"no variant found with id %s for product %s", variantID, productID)
	}
	return v, nil
}

func (uc *productUseCase) DeleteVariant(ctx context.Context, productID, variantID string) error {
	deleted, err := uc.repo.DeleteVariant(ctx, productID, variantID)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.WithMessagef(apperr.ErrNotFound,
			"no variant found with id %s for product %s", variantID, productID)
	}
	return nil
}

// SearchProducts runs the query engine over a store snapshot. A blank query
// returns an empty result without touching the snapshot.
func (uc *productUseCase) SearchProducts(ctx context.Context, queryText string, opts *query.Options) ([]model.Product, error) {
	if strings.TrimSpace(queryText) == "" {
		return []model.Product{}, nil
	}
	snapshot, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(snapshot, queryText, opts), nil
}
