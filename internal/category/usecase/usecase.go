package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/apperr"
	"github.com/arvela/catalog-service/internal/category"
	"github.com/arvela/catalog-service/internal/category/dto"
	"github.com/arvela/catalog-service/internal/model"
	"github.com/arvela/catalog-service/internal/product"
	"github.com/arvela/catalog-service/internal/query"
)

type categoryUseCase struct {
	repo     category.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, products product.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if err := uc.checkParent(ctx, input.ParentID, ""); err != nil {
		return nil, err
	}

	cat, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("category created", zap.String("id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no category found with id %s", id)
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	return uc.repo.FindAll(ctx, includeInactive)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if err := uc.checkParent(ctx, input.ParentID, id); err != nil {
		return nil, err
	}

	cat, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.WithMessagef(apperr.ErrNotFound, "no category found with id %s", id)
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	hasChildren, err := uc.repo.HasSubcategories(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return errors.WithMessage(apperr.ErrConflict,
			"cannot delete category with subcategories, delete or reassign subcategories first")
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.WithMessagef(apperr.ErrNotFound, "no category found with id %s", id)
	}
	uc.logger.Info("category deleted", zap.String("id", id))
	return nil
}

func (uc *categoryUseCase) CategoryPath(ctx context.Context, id string) ([]model.Category, error) {
	if _, err := uc.GetCategory(ctx, id); err != nil {
		return nil, err
	}
	return uc.repo.Path(ctx, id)
}

func (uc *categoryUseCase) CategoryProducts(ctx context.Context, id string) ([]model.Product, error) {
	if _, err := uc.GetCategory(ctx, id); err != nil {
		return nil, err
	}
	return uc.products.FindAll(ctx, &query.Filters{Category: id})
}

// checkParent validates a parent reference: it must not be the category
// itself and it must resolve to an existing record. A nil parentID means "no
// change requested" and always passes.
func (uc *categoryUseCase) checkParent(ctx context.Context, parentID *string, selfID string) error {
	if parentID == nil || *parentID == "" {
		return nil
	}
	if selfID != "" && *parentID == selfID {
		return errors.WithMessage(apperr.ErrInvalidRelation, "a category cannot be its own parent")
	}
	parent, err := uc.repo.FindByID(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return errors.WithMessagef(apperr.ErrInvalidRelation, "parent category with id %s not found", *parentID)
	}
	return nil
}
