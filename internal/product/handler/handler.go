package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/config"
	"github.com/arvela/catalog-service/internal/product"
	"github.com/arvela/catalog-service/internal/product/dto"
	"github.com/arvela/catalog-service/internal/query"
	"github.com/arvela/catalog-service/pkg/response"
)

type ProductHandler struct {
	uc         product.UseCase
	pagination config.PaginationConfig
	logger     *zap.Logger
}

func NewProductHandler(uc product.UseCase, pagination config.PaginationConfig, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, pagination: pagination, logger: log}
}

// Register mounts the product routes on g (mounted at /api/products). The
// search route lives at /api/search and is registered by the server.
func (h *ProductHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/variants", h.ListVariants)
	g.POST("/:id/variants", h.AddVariant)
	g.PUT("/:id/variants/:variantId", h.UpdateVariant)
	g.DELETE("/:id/variants/:variantId", h.DeleteVariant)
}

type createProductPayload struct {
	Name        string                 `json:"name" validate:"required,min=2,max=100"`
	Description string                 `json:"description" validate:"max=1000"`
	Price       *float64               `json:"price" validate:"required,gte=0"`
	CategoryIDs []string               `json:"categoryIds"`
	ImageURL    *string                `json:"imageUrl"`
	SKU         string                 `json:"sku"`
	IsActive    *bool                  `json:"isActive"`
	Attributes  map[string]interface{} `json:"attributes"`
	Discounts   []interface{}          `json:"discounts"`

	InitialStock      *int `json:"initialStock" validate:"omitempty,gte=0"`
	LowStockThreshold *int `json:"lowStockThreshold" validate:"omitempty,gte=1"`
}

type updateProductPayload struct {
	Name        *string                `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string                `json:"description" validate:"omitempty,max=1000"`
	Price       *float64               `json:"price" validate:"omitempty,gte=0"`
	CategoryIDs []string               `json:"categoryIds"`
	ImageURL    *string                `json:"imageUrl"`
	SKU         *string                `json:"sku"`
	IsActive    *bool                  `json:"isActive"`
	Attributes  map[string]interface{} `json:"attributes"`
	Discounts   []interface{}          `json:"discounts"`
}

type createVariantPayload struct {
	Name       string                 `json:"name" validate:"required,min=2,max=100"`
	Price      *float64               `json:"price" validate:"omitempty,gte=0"`
	SKU        string                 `json:"sku"`
	Attributes map[string]interface{} `json:"attributes" validate:"required"`
	IsActive   *bool                  `json:"isActive"`

	InitialStock      *int `json:"initialStock" validate:"omitempty,gte=0"`
	LowStockThreshold *int `json:"lowStockThreshold" validate:"omitempty,gte=1"`
}

type updateVariantPayload struct {
	Name       *string                `json:"name" validate:"omitempty,min=2,max=100"`
	Price      *float64               `json:"price" validate:"omitempty,gte=0"`
	SKU        *string                `json:"sku"`
	Attributes map[string]interface{} `json:"attributes"`
	IsActive   *bool                  `json:"isActive"`
}

func (h *ProductHandler) List(c echo.Context) error {
	filters := &query.Filters{
		Category: c.QueryParam("category"),
		MinPrice: floatParam(c, "minPrice"),
		MaxPrice: floatParam(c, "maxPrice"),
		IsActive: boolParam(c, "isActive"),
		Search:   c.QueryParam("search"),
		Limit:    h.limitParam(c),
		Page:     intParam(c, "page"),
	}

	products, err := h.uc.ListProducts(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return response.List(c, len(products), products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, p)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var payload createProductPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), &dto.CreateProductInput{
		Name:              payload.Name,
		Description:       payload.Description,
		Price:             *payload.Price,
		CategoryIDs:       payload.CategoryIDs,
		ImageURL:          payload.ImageURL,
		SKU:               payload.SKU,
		IsActive:          payload.IsActive,
		Attributes:        payload.Attributes,
		Discounts:         payload.Discounts,
		InitialStock:      payload.InitialStock,
		LowStockThreshold: payload.LowStockThreshold,
	})
	if err != nil {
		return err
	}
	return response.Created(c, p)
}

func (h *ProductHandler) Update(c echo.Context) error {
	var payload updateProductPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), &dto.UpdateProductInput{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		CategoryIDs: payload.CategoryIDs,
		ImageURL:    payload.ImageURL,
		SKU:         payload.SKU,
		IsActive:    payload.IsActive,
		Attributes:  payload.Attributes,
		Discounts:   payload.Discounts,
	})
	if err != nil {
		return err
	}
	return response.OK(c, p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return response.Message(c, "Product deleted successfully")
}

func (h *ProductHandler) ListVariants(c echo.Context) error {
	variants, err := h.uc.ListVariants(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.List(c, len(variants), variants)
}

func (h *ProductHandler) AddVariant(c echo.Context) error {
	var payload createVariantPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	v, err := h.uc.AddVariant(c.Request().Context(), c.Param("id"), &dto.CreateVariantInput{
		Name:              payload.Name,
		Price:             payload.Price,
		SKU:               payload.SKU,
		Attributes:        payload.Attributes,
		IsActive:          payload.IsActive,
		InitialStock:      payload.InitialStock,
		LowStockThreshold: payload.LowStockThreshold,
	})
	if err != nil {
		return err
	}
	return response.Created(c, v)
}

func (h *ProductHandler) UpdateVariant(c echo.Context) error {
	var payload updateVariantPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	v, err := h.uc.UpdateVariant(c.Request().Context(), c.Param("id"), c.Param("variantId"), &dto.UpdateVariantInput{
		Name:       payload.Name,
		Price:      payload.Price,
		SKU:        payload.SKU,
		Attributes: payload.Attributes,
		IsActive:   payload.IsActive,
	})
	if err != nil {
		return err
	}
	return response.OK(c, v)
}

func (h *ProductHandler) DeleteVariant(c echo.Context) error {
	if err := h.uc.DeleteVariant(c.Request().Context(), c.Param("id"), c.Param("variantId")); err != nil {
		return err
	}
	return response.Message(c, "Variant deleted successfully")
}

// Search handles GET /api/search. Sorting happens inside the engine;
// pagination is layered on top of the sorted result here.
func (h *ProductHandler) Search(c echo.Context) error {
	opts := &query.Options{
		Category: c.QueryParam("category"),
		MinPrice: floatParam(c, "minPrice"),
		MaxPrice: floatParam(c, "maxPrice"),
		Sort:     c.QueryParam("sort"),
	}

	results, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"), opts)
	if err != nil {
		return err
	}

	if limit, page := h.limitParam(c), intParam(c, "page"); limit != nil && page != nil {
		results = query.Paginate(results, *limit, *page)
	}
	return response.List(c, len(results), results)
}

// limitParam reads the limit query parameter, capped at the configured
// maximum.
func (h *ProductHandler) limitParam(c echo.Context) *int {
	limit := intParam(c, "limit")
	if limit != nil && *limit > h.pagination.MaxLimit {
		capped := h.pagination.MaxLimit
		return &capped
	}
	return limit
}

func floatParam(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil
	}
	return &v
}

func intParam(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return nil
	}
	return &v
}

// boolParam only honors explicit "true"/"false"; anything else means the
// filter is absent.
func boolParam(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
