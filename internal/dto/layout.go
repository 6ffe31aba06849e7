package dto

import (
	"encoding/json"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CreateLayoutRequest stores a page-builder layout.
type CreateLayoutRequest struct {
	Name        string          `json:"name" binding:"required"`
	PageKey     string          `json:"pageKey" binding:"required,max=100"`
	Components  json.RawMessage `json:"components"`
	IsPublished bool            `json:"isPublished"`
}

// UpdateLayoutRequest defines the fields that can be changed on a layout.
type UpdateLayoutRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=1"`
	PageKey     *string         `json:"pageKey" binding:"omitempty,min=1,max=100"`
	Components  json.RawMessage `json:"components"`
	IsPublished *bool           `json:"isPublished"`
}

// ListLayoutsParams defines query parameters for listing layouts.
type ListLayoutsParams struct {
	PageKey string `form:"pageKey"`
}

// ListLayoutsResponse wraps a list of layouts.
type ListLayoutsResponse struct {
	Layouts []domain.PageLayout `json:"layouts"`
}
