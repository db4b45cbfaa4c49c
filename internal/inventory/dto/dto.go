package dto

import "github.com/arvela/catalog-service/internal/model"

// LowStockItem is an inventory record joined with display details from its
// product and variant. Records whose product has been deleted keep the join
// fields empty instead of being dropped from the report.
type LowStockItem struct {
	model.Inventory
	ProductName       string                 `json:"productName,omitempty"`
	SKU               string                 `json:"sku,omitempty"`
	VariantName       string                 `json:"variantName,omitempty"`
	VariantAttributes map[string]interface{} `json:"variantAttributes,omitempty"`
}
