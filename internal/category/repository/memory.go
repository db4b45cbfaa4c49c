// Package repository provides the in-memory category store. Records live in a
// slice to preserve insertion order for listings; all access is serialized
// through a mutex and every returned record is a detached copy.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arvela/catalog-service/internal/category"
	"github.com/arvela/catalog-service/internal/category/dto"
	"github.com/arvela/catalog-service/internal/model"
)

var _ category.Repository = (*MemoryRepository)(nil)

type MemoryRepository struct {
	mu         sync.RWMutex
	categories []model.Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	c := model.Category{
		BaseModel: model.BaseModel{
			ID:          uuid.New().String(),
			DateCreated: now,
			DateUpdated: now,
		},
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		Attributes:  input.Attributes,
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	if c.Attributes == nil {
		c.Attributes = map[string]interface{}{}
	}

	r.categories = append(r.categories, *c.Clone())
	return c.Clone(), nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.categories))
	for i := range r.categories {
		if includeInactive || r.categories[i].IsActive {
			out = append(out, *r.categories[i].Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.categories[i].Clone(), nil
	}
	return nil, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch *dto.UpdateCategoryInput) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	c := &r.categories[i]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.ParentID != nil {
		c.ParentID = patch.ParentID
	}
	if patch.ImageURL != nil {
		c.ImageURL = patch.ImageURL
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
	if patch.Attributes != nil {
		c.Attributes = patch.Attributes
	}
	c.DateUpdated = time.Now()

	return c.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.categories = append(r.categories[:i], r.categories[i+1:]...)
	return true, nil
}

func (r *MemoryRepository) Subcategories(ctx context.Context, parentID string) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0)
	for i := range r.categories {
		if p := r.categories[i].ParentID; p != nil && *p == parentID {
			out = append(out, *r.categories[i].Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) HasSubcategories(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.categories {
		if p := r.categories[i].ParentID; p != nil && *p == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Path(ctx context.Context, id string) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path := make([]model.Category, 0)
	seen := map[string]bool{}
	currentID := id
	for currentID != "" && !seen[currentID] {
		seen[currentID] = true
		i := r.indexOf(currentID)
		if i < 0 {
			break
		}
		path = append([]model.Category{*r.categories[i].Clone()}, path...)
		if p := r.categories[i].ParentID; p != nil {
			currentID = *p
		} else {
			currentID = ""
		}
	}
	return path, nil
}

func (r *MemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = nil
}

// indexOf assumes the caller holds the lock.
func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return i
		}
	}
	return -1
}
