package dto

type CreateCategoryInput struct {
	Name        string
	Description string
	ParentID    *string
	ImageURL    *string
	IsActive    *bool // defaults to true
	Attributes  map[string]interface{}
}

// UpdateCategoryInput is a partial patch: nil fields leave the stored value
// untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ParentID    *string
	ImageURL    *string
	IsActive    *bool
	Attributes  map[string]interface{}
}
