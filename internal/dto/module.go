package dto

import "github.com/SscSPs/backoffice_app/internal/core/modules"

// UpdateModuleRequest enables or disables a feature module.
type UpdateModuleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ListModulesResponse wraps the module registry contents.
type ListModulesResponse struct {
	Modules []modules.Module `json:"modules"`
}
