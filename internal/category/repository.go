package category

import (
	"context"

	"github.com/arvela/catalog-service/internal/category/dto"
	"github.com/arvela/catalog-service/internal/model"
)

// Repository is the category store. It never enforces cross-entity rules:
// "not found" is signalled with nil/false, and anything relational (parent
// existence, child-blocked deletes) is the use case layer's business.
type Repository interface {
	Create(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	// FindAll returns records in insertion order; inactive ones only when
	// includeInactive is set.
	FindAll(ctx context.Context, includeInactive bool) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	Update(ctx context.Context, id string, patch *dto.UpdateCategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id string) (bool, error)

	Subcategories(ctx context.Context, parentID string) ([]model.Category, error)
	HasSubcategories(ctx context.Context, id string) (bool, error)
	// Path resolves the root-to-leaf chain ending at id. It stops short on a
	// dangling parent reference and never revisits an id, so a mistakenly
	// introduced cycle cannot loop it.
	Path(ctx context.Context, id string) ([]model.Category, error)

	// Clear drops every record. Test isolation hook.
	Clear()
}
