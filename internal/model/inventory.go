package model

import "time"

// Inventory is a stock record for a product, or for one of its variants when
// VariantID is set. At most one record exists per (ProductID, VariantID) pair.
// Quantity is never persisted negative.
type Inventory struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"productId"`
	VariantID         *string   `json:"variantId"`
	Quantity          int       `json:"quantity"`
	ReservedQuantity  int       `json:"reservedQuantity"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	Location          string    `json:"location"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

func (i *Inventory) Clone() *Inventory {
	out := *i
	return &out
}
