// Package repository provides the in-memory inventory store. It owns the
// one-record-per-(productId,variantId) invariant and the clamp-at-zero rule
// for delta adjustments.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arvela/catalog-service/internal/inventory"
	"github.com/arvela/catalog-service/internal/inventory/dto"
	"github.com/arvela/catalog-service/internal/model"
)

var _ inventory.Repository = (*MemoryRepository)(nil)

type MemoryRepository struct {
	mu               sync.RWMutex
	items            []model.Inventory
	defaultThreshold int
}

// NewMemoryRepository builds a store whose records default their low-stock
// threshold to defaultLowStockThreshold when none is supplied.
func NewMemoryRepository(defaultLowStockThreshold int) *MemoryRepository {
	return &MemoryRepository{defaultThreshold: defaultLowStockThreshold}
}

func (r *MemoryRepository) CreateOrUpdate(ctx context.Context, input *dto.UpsertInventoryInput) (*model.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOfPair(input.ProductID, input.VariantID); i >= 0 {
		return r.applyPatch(i, &dto.UpdateInventoryInput{
			Quantity:          input.Quantity,
			ReservedQuantity:  input.ReservedQuantity,
			LowStockThreshold: input.LowStockThreshold,
			Location:          input.Location,
		}), nil
	}

	item := model.Inventory{
		ID:                uuid.New().String(),
		ProductID:         input.ProductID,
		VariantID:         input.VariantID,
		Quantity:          0,
		ReservedQuantity:  0,
		LowStockThreshold: r.defaultThreshold,
		Location:          "default",
		LastUpdated:       time.Now(),
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.ReservedQuantity != nil {
		item.ReservedQuantity = *input.ReservedQuantity
	}
	if input.LowStockThreshold != nil {
		item.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Location != nil {
		item.Location = *input.Location
	}

	r.items = append(r.items, item)
	return item.Clone(), nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Inventory, 0, len(r.items))
	for i := range r.items {
		out = append(out, *r.items[i].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i].Clone(), nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByProduct(ctx context.Context, productID string) ([]model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Inventory, 0)
	for i := range r.items {
		if r.items[i].ProductID == productID {
			out = append(out, *r.items[i].Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindProductLevel(ctx context.Context, productID string) (*model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOfPair(productID, nil); i >= 0 {
		return r.items[i].Clone(), nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByVariant(ctx context.Context, productID, variantID string) (*model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOfPair(productID, &variantID); i >= 0 {
		return r.items[i].Clone(), nil
	}
	return nil, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch *dto.UpdateInventoryInput) (*model.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return r.applyPatch(i, patch), nil
}

func (r *MemoryRepository) AdjustQuantity(ctx context.Context, productID string, variantID *string, delta int) (*model.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfPair(productID, variantID)
	if i < 0 {
		return nil, nil
	}

	item := &r.items[i]
	next := item.Quantity + delta
	if next < 0 {
		next = 0
	}
	item.Quantity = next
	item.LastUpdated = time.Now()

	return item.Clone(), nil
}

func (r *MemoryRepository) LowStock(ctx context.Context) ([]model.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Inventory, 0)
	for i := range r.items {
		if r.items[i].Quantity <= r.items[i].LowStockThreshold {
			out = append(out, *r.items[i].Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true, nil
}

func (r *MemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// applyPatch assumes the caller holds the write lock.
func (r *MemoryRepository) applyPatch(i int, patch *dto.UpdateInventoryInput) *model.Inventory {
	item := &r.items[i]
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.ReservedQuantity != nil {
		item.ReservedQuantity = *patch.ReservedQuantity
	}
	if patch.LowStockThreshold != nil {
		item.LowStockThreshold = *patch.LowStockThreshold
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	item.LastUpdated = time.Now()
	return item.Clone()
}

func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// indexOfPair matches on the (productID, variantID) identity; two nil variant
// ids are equal, a nil and a non-nil are not.
func (r *MemoryRepository) indexOfPair(productID string, variantID *string) int {
	for i := range r.items {
		if r.items[i].ProductID != productID {
			continue
		}
		a, b := r.items[i].VariantID, variantID
		if a == nil && b == nil {
			return i
		}
		if a != nil && b != nil && *a == *b {
			return i
		}
	}
	return -1
}
