package dto

// UpsertInventoryInput feeds the create-or-update operation: if a record for
// (ProductID, VariantID) already exists the input degrades to a patch of that
// record, otherwise a new record is created with the nil fields defaulted.
type UpsertInventoryInput struct {
	ProductID         string
	VariantID         *string
	Quantity          *int
	ReservedQuantity  *int
	LowStockThreshold *int
	Location          *string
}

// UpdateInventoryInput patches a record by id. Quantity set here is taken
// verbatim: clamping only happens on delta adjustments.
type UpdateInventoryInput struct {
	Quantity          *int
	ReservedQuantity  *int
	LowStockThreshold *int
	Location          *string
}
