package dto

import "encoding/json"

// UpdateSettingsRequest replaces the values of one settings section.
type UpdateSettingsRequest struct {
	Values json.RawMessage `json:"values" binding:"required"`
}
