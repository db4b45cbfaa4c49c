package model

// Product is a sellable catalog entry. Variants are embedded and exclusively
// owned: they have no lifecycle outside their product.
type Product struct {
	BaseModel
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	CategoryIDs []string               `json:"categoryIds"`
	ImageURL    *string                `json:"imageUrl"`
	SKU         string                 `json:"sku"`
	IsActive    bool                   `json:"isActive"`
	Variants    []Variant              `json:"variants"`
	Discounts   []interface{}          `json:"discounts"`
	Attributes  map[string]interface{} `json:"attributes"`
}

// Variant is a purchasable configuration of a product (size, color, ...). It
// shares the product's identity but carries its own price and SKU.
type Variant struct {
	BaseModel
	Name       string                 `json:"name"`
	Price      float64                `json:"price"`
	SKU        string                 `json:"sku"`
	Attributes map[string]interface{} `json:"attributes"`
	IsActive   bool                   `json:"isActive"`
}

// Clone deep-copies the product including its variant list.
func (p *Product) Clone() *Product {
	out := *p
	if p.CategoryIDs != nil {
		out.CategoryIDs = append(make([]string, 0, len(p.CategoryIDs)), p.CategoryIDs...)
	}
	if p.Discounts != nil {
		out.Discounts = append(make([]interface{}, 0, len(p.Discounts)), p.Discounts...)
	}
	out.Attributes = cloneAttributes(p.Attributes)
	if p.Variants != nil {
		out.Variants = make([]Variant, len(p.Variants))
		for i := range p.Variants {
			out.Variants[i] = *p.Variants[i].Clone()
		}
	}
	return &out
}

// Clone returns a copy with a detached attribute map.
func (v *Variant) Clone() *Variant {
	out := *v
	out.Attributes = cloneAttributes(v.Attributes)
	return &out
}
