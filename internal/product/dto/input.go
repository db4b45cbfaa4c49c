package dto

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryIDs []string
	ImageURL    *string
	SKU         string // derived from the id when empty
	IsActive    *bool  // defaults to true
	Attributes  map[string]interface{}
	Discounts   []interface{}

	// InitialStock, when set, makes the coordinator create an inventory
	// record for the new product, carrying LowStockThreshold over.
	InitialStock      *int
	LowStockThreshold *int
}

// UpdateProductInput is a partial patch: nil fields leave the stored value
// untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryIDs []string
	ImageURL    *string
	SKU         *string
	IsActive    *bool
	Attributes  map[string]interface{}
	Discounts   []interface{}
}

type CreateVariantInput struct {
	Name       string
	Price      *float64 // defaults to the parent product's price
	SKU        string   // derived from the parent SKU when empty
	Attributes map[string]interface{}
	IsActive   *bool // defaults to true

	InitialStock      *int
	LowStockThreshold *int
}

type UpdateVariantInput struct {
	Name       *string
	Price      *float64
	SKU        *string
	Attributes map[string]interface{}
	IsActive   *bool
}
