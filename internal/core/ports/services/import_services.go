package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/export"
)

// ImportSvc loads services, payments or vendors from an uploaded CSV or JSON file.
type ImportSvc interface {
	Import(ctx context.Context, filename string, data []byte, creatorUserID string) (*dto.ImportResult, error)
}

// ExportSvc renders stored records as downloadable files.
type ExportSvc interface {
	ExportServices(ctx context.Context) (*export.File, error)
	ExportPayments(ctx context.Context, params dto.ListPaymentsParams) (*export.File, error)
	ExportVendors(ctx context.Context) (*export.File, error)
	ExportAssets(ctx context.Context) (*export.File, error)
	AssetRegisterPDF(ctx context.Context) (*export.File, error)
	ExportLayout(ctx context.Context, layoutID string) (*export.File, error)
}
