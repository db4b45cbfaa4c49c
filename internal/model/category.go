package model

// Category is a node in the category forest. ParentID is nil for roots.
type Category struct {
	BaseModel
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	ParentID    *string                `json:"parentId"`
	ImageURL    *string                `json:"imageUrl"`
	IsActive    bool                   `json:"isActive"`
	Attributes  map[string]interface{} `json:"attributes"`
}

// Clone returns a copy whose attribute map is detached from the receiver, so
// callers can never reach back into repository state.
func (c *Category) Clone() *Category {
	out := *c
	out.Attributes = cloneAttributes(c.Attributes)
	return &out
}
