package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/google/uuid"
)

type layoutService struct {
	BaseService
	layoutRepo portsrepo.PageLayoutRepositoryFacade
}

// NewLayoutService creates the page layout service.
func NewLayoutService(layoutRepo portsrepo.PageLayoutRepositoryFacade) portssvc.LayoutSvcFacade {
	return &layoutService{layoutRepo: layoutRepo}
}

func (s *layoutService) CreateLayout(ctx context.Context, req dto.CreateLayoutRequest, creatorUserID string) (*domain.PageLayout, error) {
	components, err := normalizeComponents(req.Components)
	if err != nil {
		return nil, err
	}
	layout := domain.PageLayout{
		LayoutID:    uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		PageKey:     strings.TrimSpace(req.PageKey),
		Components:  components,
		IsPublished: req.IsPublished,
		AuditFields: domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if layout.Name == "" || layout.PageKey == "" {
		return nil, apperrors.NewValidationError("layout name and page key are required")
	}
	if err := s.layoutRepo.SaveLayout(ctx, layout); err != nil {
		s.LogError(ctx, err, "Failed to save layout", slog.String("page_key", layout.PageKey))
		return nil, fmt.Errorf("failed to create layout: %w", err)
	}
	return &layout, nil
}

func (s *layoutService) GetLayout(ctx context.Context, layoutID string) (*domain.PageLayout, error) {
	layout, err := s.layoutRepo.FindLayoutByID(ctx, layoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}
	return layout, nil
}

func (s *layoutService) ListLayouts(ctx context.Context, pageKey string) ([]domain.PageLayout, error) {
	layouts, err := s.layoutRepo.FindLayouts(ctx, strings.TrimSpace(pageKey))
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	if layouts == nil {
		layouts = []domain.PageLayout{}
	}
	return layouts, nil
}

func (s *layoutService) UpdateLayout(ctx context.Context, layoutID string, req dto.UpdateLayoutRequest, requestingUserID string) (*domain.PageLayout, error) {
	layout, err := s.layoutRepo.FindLayoutByID(ctx, layoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to find layout for update: %w", err)
	}
	if req.Name != nil {
		layout.Name = strings.TrimSpace(*req.Name)
	}
	if req.PageKey != nil {
		layout.PageKey = strings.TrimSpace(*req.PageKey)
	}
	if req.Components != nil {
		if layout.Components, err = normalizeComponents(req.Components); err != nil {
			return nil, err
		}
	}
	if req.IsPublished != nil {
		layout.IsPublished = *req.IsPublished
	}
	if layout.Name == "" || layout.PageKey == "" {
		return nil, apperrors.NewValidationError("layout name and page key are required")
	}

	layout.Touch(requestingUserID, s.Now())
	if err := s.layoutRepo.UpdateLayout(ctx, *layout); err != nil {
		return nil, fmt.Errorf("failed to update layout: %w", err)
	}
	return layout, nil
}

func (s *layoutService) DeleteLayout(ctx context.Context, layoutID string, requestingUserID string) error {
	if err := s.layoutRepo.DeleteLayout(ctx, layoutID); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}
	s.LogInfo(ctx, "Layout deleted", slog.String("layout_id", layoutID), slog.String("deleted_by", requestingUserID))
	return nil
}

// normalizeComponents defaults missing components to an empty array and rejects invalid JSON.
func normalizeComponents(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage("[]"), nil
	}
	if !json.Valid(raw) {
		return nil, apperrors.NewValidationError("components must be valid JSON")
	}
	return raw, nil
}

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates the settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context, section domain.SettingsSection) (*domain.Settings, error) {
	if !section.IsValid() {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("unknown settings section %q", section))
	}
	settings, err := s.settingsRepo.FindSettings(ctx, section)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Settings{Section: section, Values: json.RawMessage("{}")}, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, section domain.SettingsSection, req dto.UpdateSettingsRequest, requestingUserID string) (*domain.Settings, error) {
	if !section.IsValid() {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("unknown settings section %q", section))
	}
	var values map[string]any
	if err := json.Unmarshal(req.Values, &values); err != nil || values == nil {
		return nil, apperrors.NewValidationError("settings values must be a JSON object")
	}

	settings := domain.Settings{
		Section:     section,
		Values:      req.Values,
		AuditFields: domain.NewAuditFields(requestingUserID, s.Now()),
	}
	if err := s.settingsRepo.UpsertSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("section", string(section)))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}
