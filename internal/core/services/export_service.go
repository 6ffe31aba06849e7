package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/SscSPs/backoffice_app/internal/utils/export"
)

type exportService struct {
	BaseService
	repos  portsrepo.RepositoryProvider
	assets portssvc.AssetSvcFacade
	rates  *currency.RateTable
	policy currency.Policy
}

// NewExportService creates the export service. Assets are read through the
// asset service so exported book values follow the configured book value mode.
func NewExportService(repos portsrepo.RepositoryProvider, assets portssvc.AssetSvcFacade, rates *currency.RateTable, policy currency.Policy) portssvc.ExportSvc {
	return &exportService{repos: repos, assets: assets, rates: rates, policy: policy}
}

func (s *exportService) ExportServices(ctx context.Context) (*export.File, error) {
	services, err := s.repos.ServiceRepo.FindServices(ctx, portsrepo.ServiceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load services for export: %w", err)
	}
	return export.Services(services, s.Now())
}

func (s *exportService) ExportPayments(ctx context.Context, params dto.ListPaymentsParams) (*export.File, error) {
	payments, _, err := s.repos.PaymentRepo.FindPayments(ctx, portsrepo.PaymentFilter{
		ServiceID: params.ServiceID,
		From:      params.From,
		To:        params.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for export: %w", err)
	}
	services, err := s.repos.ServiceRepo.FindServices(ctx, portsrepo.ServiceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load services for export: %w", err)
	}
	names := make(map[string]string, len(services))
	for _, svc := range services {
		names[svc.ServiceID] = svc.ServiceName
	}
	return export.Payments(payments, names, s.Now())
}

func (s *exportService) ExportVendors(ctx context.Context) (*export.File, error) {
	vendors, err := s.repos.VendorRepo.FindVendors(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendors for export: %w", err)
	}
	return export.Vendors(vendors, s.Now())
}

func (s *exportService) ExportAssets(ctx context.Context) (*export.File, error) {
	assets, err := s.assets.ListAssets(ctx, dto.ListAssetsParams{})
	if err != nil {
		return nil, err
	}
	return export.Assets(assets, s.Now())
}

func (s *exportService) AssetRegisterPDF(ctx context.Context) (*export.File, error) {
	assets, err := s.assets.ListAssets(ctx, dto.ListAssetsParams{})
	if err != nil {
		return nil, err
	}
	categories, err := s.assets.ListAssetCategories(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.assets.ListAssetLocations(ctx)
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.AssetCategoryID] = c.Name
	}
	locationNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locationNames[l.AssetLocationID] = l.Name
	}

	entries := make([]export.RegisterEntry, 0, len(assets))
	amounts := make([]domain.MoneyAmount, 0, len(assets))
	for _, a := range assets {
		entry := export.RegisterEntry{Asset: a}
		if a.CategoryID != nil {
			entry.CategoryName = categoryNames[*a.CategoryID]
		}
		if a.LocationID != nil {
			entry.LocationName = locationNames[*a.LocationID]
		}
		entries = append(entries, entry)
		amounts = append(amounts, domain.MoneyAmount{Amount: a.CurrentBookValue, Currency: a.Currency})
	}

	totals, err := s.rates.Aggregate(amounts, s.policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return export.AssetRegisterPDF(s.companyName(ctx), entries, totals, s.Now())
}

// companyName reads "name" from the company settings section. It is empty when unset.
func (s *exportService) companyName(ctx context.Context) string {
	settings, err := s.repos.SettingsRepo.FindSettings(ctx, domain.SettingsCompany)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load company settings")
		}
		return ""
	}
	var values struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(settings.Values, &values); err != nil {
		return ""
	}
	return values.Name
}

func (s *exportService) ExportLayout(ctx context.Context, layoutID string) (*export.File, error) {
	layout, err := s.repos.PageLayoutRepo.FindLayoutByID(ctx, layoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout for export: %w", err)
	}
	return export.Layout(*layout, s.Now())
}
