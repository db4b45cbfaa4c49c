package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/category"
	"github.com/arvela/catalog-service/internal/category/dto"
	"github.com/arvela/catalog-service/pkg/response"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger *zap.Logger
}

func NewCategoryHandler(uc category.UseCase, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: log}
}

// Register mounts the category routes on g (mounted at /api/categories).
func (h *CategoryHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/products", h.Products)
	g.GET("/:id/path", h.Path)
}

type createCategoryPayload struct {
	Name        string                 `json:"name" validate:"required,min=2,max=50"`
	Description string                 `json:"description" validate:"max=500"`
	ParentID    *string                `json:"parentId"`
	ImageURL    *string                `json:"imageUrl"`
	IsActive    *bool                  `json:"isActive"`
	Attributes  map[string]interface{} `json:"attributes"`
}

type updateCategoryPayload struct {
	Name        *string                `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string                `json:"description" validate:"omitempty,max=500"`
	ParentID    *string                `json:"parentId"`
	ImageURL    *string                `json:"imageUrl"`
	IsActive    *bool                  `json:"isActive"`
	Attributes  map[string]interface{} `json:"attributes"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	includeInactive := cast.ToBool(c.QueryParam("includeInactive"))

	categories, err := h.uc.ListCategories(c.Request().Context(), includeInactive)
	if err != nil {
		return err
	}
	return response.List(c, len(categories), categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	cat, err := h.uc.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, cat)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var payload createCategoryPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), &dto.CreateCategoryInput{
		Name:        payload.Name,
		Description: payload.Description,
		ParentID:    payload.ParentID,
		ImageURL:    payload.ImageURL,
		IsActive:    payload.IsActive,
		Attributes:  payload.Attributes,
	})
	if err != nil {
		return err
	}
	return response.Created(c, cat)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var payload updateCategoryPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	cat, err := h.uc.UpdateCategory(c.Request().Context(), c.Param("id"), &dto.UpdateCategoryInput{
		Name:        payload.Name,
		Description: payload.Description,
		ParentID:    payload.ParentID,
		ImageURL:    payload.ImageURL,
		IsActive:    payload.IsActive,
		Attributes:  payload.Attributes,
	})
	if err != nil {
		return err
	}
	return response.OK(c, cat)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return response.Message(c, "Category deleted successfully")
}

func (h *CategoryHandler) Products(c echo.Context) error {
	products, err := h.uc.CategoryProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.List(c, len(products), products)
}

func (h *CategoryHandler) Path(c echo.Context) error {
	path, err := h.uc.CategoryPath(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.List(c, len(path), path)
}
