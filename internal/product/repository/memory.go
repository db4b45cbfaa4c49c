// Package repository provides the in-memory product store. Products own their
// variants as an embedded slice; records keep insertion order and all reads
// hand out detached copies.
package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arvela/catalog-service/internal/model"
	"github.com/arvela/catalog-service/internal/product"
	"github.com/arvela/catalog-service/internal/product/dto"
	"github.com/arvela/catalog-service/internal/query"
)

var _ product.Repository = (*MemoryRepository)(nil)

type MemoryRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	id := uuid.New().String()

	p := model.Product{
		BaseModel: model.BaseModel{
			ID:          id,
			DateCreated: now,
			DateUpdated: now,
		},
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryIDs: input.CategoryIDs,
		ImageURL:    input.ImageURL,
		SKU:         input.SKU,
		IsActive:    true,
		Variants:    []model.Variant{},
		Discounts:   input.Discounts,
		Attributes:  input.Attributes,
	}
	if p.SKU == "" {
		p.SKU = deriveSKU(id)
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if p.CategoryIDs == nil {
		p.CategoryIDs = []string{}
	}
	if p.Discounts == nil {
		p.Discounts = []interface{}{}
	}
	if p.Attributes == nil {
		p.Attributes = map[string]interface{}{}
	}

	r.products = append(r.products, *p.Clone())
	return p.Clone(), nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, filters *query.Filters) ([]model.Product, error) {
	snapshot, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(snapshot, filters), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i].Clone(), nil
	}
	return nil, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch *dto.UpdateProductInput) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	p := &r.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryIDs != nil {
		p.CategoryIDs = patch.CategoryIDs
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.Attributes != nil {
		p.Attributes = patch.Attributes
	}
	if patch.Discounts != nil {
		p.Discounts = patch.Discounts
	}
	p.DateUpdated = time.Now()

	return p.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return true, nil
}

func (r *MemoryRepository) AddVariant(ctx context.Context, productID string, input *dto.CreateVariantInput) (*model.Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return nil, nil
	}
	p := &r.products[i]

	now := time.Now()
	v := model.Variant{
		BaseModel: model.BaseModel{
			ID:          uuid.New().String(),
			DateCreated: now,
			DateUpdated: now,
		},
		Name:       input.Name,
		Price:      p.Price,
		SKU:        input.SKU,
		Attributes: input.Attributes,
		IsActive:   true,
	}
	if input.Price != nil {
		v.Price = *input.Price
	}
	if v.SKU == "" {
		// Position-based suffix: after deletions a suffix can repeat. Kept
		// deliberately, the SKU is a label here, not a key.
		v.SKU = fmt.Sprintf("%s-VAR-%d", p.SKU, len(p.Variants)+1)
	}
	if input.IsActive != nil {
		v.IsActive = *input.IsActive
	}
	if v.Attributes == nil {
		v.Attributes = map[string]interface{}{}
	}

	p.Variants = append(p.Variants, *v.Clone())
	return v.Clone(), nil
}

func (r *MemoryRepository) Variants(ctx context.Context, productID string) ([]model.Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(productID)
	if i < 0 {
		return nil, nil
	}
	out := make([]model.Variant, 0, len(r.products[i].Variants))
	for j := range r.products[i].Variants {
		out = append(out, *r.products[i].Variants[j].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) UpdateVariant(ctx context.Context, productID, variantID string, patch *dto.UpdateVariantInput) (*model.Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return nil, nil
	}
	j := indexOfVariant(r.products[i].Variants, variantID)
	if j < 0 {
		return nil, nil
	}

	v := &r.products[i].Variants[j]
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Price != nil {
		v.Price = *patch.Price
	}
	if patch.SKU != nil {
		v.SKU = *patch.SKU
	}
	if patch.Attributes != nil {
		v.Attributes = patch.Attributes
	}
	if patch.IsActive != nil {
		v.IsActive = *patch.IsActive
	}
	v.DateUpdated = time.Now()

	return v.Clone(), nil
}

func (r *MemoryRepository) DeleteVariant(ctx context.Context, productID, variantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return false, nil
	}
	variants := r.products[i].Variants
	j := indexOfVariant(variants, variantID)
	if j < 0 {
		return false, nil
	}
	r.products[i].Variants = append(variants[:j], variants[j+1:]...)
	return true, nil
}

func (r *MemoryRepository) Snapshot(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for i := range r.products {
		out = append(out, *r.products[i].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
}

// deriveSKU builds the default SKU from a fresh product id.
func deriveSKU(id string) string {
	fragment := id
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	return "SKU-" + strings.ToUpper(fragment)
}

func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfVariant(variants []model.Variant, id string) int {
	for i := range variants {
		if variants[i].ID == id {
			return i
		}
	}
	return -1
}
