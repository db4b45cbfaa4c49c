package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/internal/inventory"
	"github.com/arvela/catalog-service/internal/inventory/dto"
	"github.com/arvela/catalog-service/pkg/response"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

// Register mounts the inventory routes on g (mounted at /api/inventory). The
// low-stock report lives under /api/reports and is registered by the server.
func (h *InventoryHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:productId", h.GetByProduct)
	g.PUT("/:productId", h.Upsert)
	g.POST("/:productId/adjust", h.Adjust)
	g.GET("/:productId/:variantId", h.GetByVariant)
}

type upsertInventoryPayload struct {
	VariantID         *string `json:"variantId"`
	Quantity          *int    `json:"quantity" validate:"required,gte=0"`
	ReservedQuantity  *int    `json:"reservedQuantity" validate:"omitempty,gte=0"`
	LowStockThreshold *int    `json:"lowStockThreshold" validate:"omitempty,gte=1"`
	Location          *string `json:"location"`
}

type adjustQuantityPayload struct {
	VariantID *string `json:"variantId"`
	Delta     *int    `json:"delta" validate:"required"`
}

func (h *InventoryHandler) List(c echo.Context) error {
	records, err := h.uc.ListInventory(c.Request().Context())
	if err != nil {
		return err
	}
	return response.List(c, len(records), records)
}

func (h *InventoryHandler) GetByProduct(c echo.Context) error {
	includeVariants := c.QueryParam("includeVariants") != "false"
	records, err := h.uc.GetProductInventory(c.Request().Context(), c.Param("productId"), includeVariants)
	if err != nil {
		return err
	}
	return response.List(c, len(records), records)
}

func (h *InventoryHandler) GetByVariant(c echo.Context) error {
	record, err := h.uc.GetVariantInventory(c.Request().Context(), c.Param("productId"), c.Param("variantId"))
	if err != nil {
		return err
	}
	return response.OK(c, record)
}

func (h *InventoryHandler) Upsert(c echo.Context) error {
	var payload upsertInventoryPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	record, err := h.uc.UpsertInventory(c.Request().Context(), &dto.UpsertInventoryInput{
		ProductID:         c.Param("productId"),
		VariantID:         payload.VariantID,
		Quantity:          payload.Quantity,
		ReservedQuantity:  payload.ReservedQuantity,
		LowStockThreshold: payload.LowStockThreshold,
		Location:          payload.Location,
	})
	if err != nil {
		return err
	}
	return response.OK(c, record)
}

func (h *InventoryHandler) Adjust(c echo.Context) error {
	var payload adjustQuantityPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	record, err := h.uc.AdjustQuantity(c.Request().Context(), c.Param("productId"), payload.VariantID, *payload.Delta)
	if err != nil {
		return err
	}
	return response.OK(c, record)
}

// LowStockReport handles GET /api/reports/low-stock.
func (h *InventoryHandler) LowStockReport(c echo.Context) error {
	items, err := h.uc.LowStockReport(c.Request().Context())
	if err != nil {
		return err
	}
	return response.List(c, len(items), items)
}
