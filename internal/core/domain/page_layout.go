package domain

import "encoding/json"

// PageLayout is a page-builder layout. Components is opaque to the backend.
type PageLayout struct {
	LayoutID    string          `json:"layoutID"`
	Name        string          `json:"name"`
	PageKey     string          `json:"pageKey"`
	Components  json.RawMessage `json:"components"`
	IsPublished bool            `json:"isPublished"`
	AuditFields
}
