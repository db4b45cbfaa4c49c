package model

import "time"

// BaseModel carries the identity and audit fields shared by catalog entities.
// DateUpdated is refreshed by the owning repository on every mutation.
type BaseModel struct {
	ID          string    `json:"id"`
	DateCreated time.Time `json:"dateCreated"`
	DateUpdated time.Time `json:"dateUpdated"`
}

func cloneAttributes(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
