package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateLayout_DefaultsComponents(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPageLayoutRepository)
	svc := services.NewLayoutService(repo)

	repo.On("SaveLayout", ctx, mock.MatchedBy(func(l domain.PageLayout) bool {
		return l.LayoutID != "" && string(l.Components) == "[]" && l.CreatedBy == "admin-1"
	})).Return(nil).Once()

	layout, err := svc.CreateLayout(ctx, dto.CreateLayoutRequest{Name: " Home ", PageKey: "home", Components: json.RawMessage("null")}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "Home", layout.Name)
	repo.AssertExpectations(t)
}

func TestCreateLayout_InvalidComponents(t *testing.T) {
	repo := new(MockPageLayoutRepository)
	svc := services.NewLayoutService(repo)

	_, err := svc.CreateLayout(context.Background(), dto.CreateLayoutRequest{Name: "Home", PageKey: "home", Components: json.RawMessage("{oops")}, "admin-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveLayout", mock.Anything, mock.Anything)
}

func TestUpdateLayout_PartialFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPageLayoutRepository)
	svc := services.NewLayoutService(repo)
	existing := &domain.PageLayout{LayoutID: "l1", Name: "Home", PageKey: "home", Components: json.RawMessage(`[{"type":"hero"}]`)}

	repo.On("FindLayoutByID", ctx, "l1").Return(existing, nil).Once()
	repo.On("UpdateLayout", ctx, mock.AnythingOfType("domain.PageLayout")).Return(nil).Once()

	layout, err := svc.UpdateLayout(ctx, "l1", dto.UpdateLayoutRequest{IsPublished: ptr(true)}, "admin-2")

	require.NoError(t, err)
	assert.True(t, layout.IsPublished)
	assert.JSONEq(t, `[{"type":"hero"}]`, string(layout.Components))
	assert.Equal(t, "admin-2", layout.LastUpdatedBy)
}

func TestGetSettings_UnsavedSectionIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo)
	repo.On("FindSettings", ctx, domain.SettingsCompany).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := svc.GetSettings(ctx, domain.SettingsCompany)

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(settings.Values))
}

func TestGetSettings_UnknownSection(t *testing.T) {
	svc := services.NewSettingsService(new(MockSettingsRepository))

	_, err := svc.GetSettings(context.Background(), domain.SettingsSection("billing"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo)

	_, err := svc.UpdateSettings(ctx, domain.SettingsCompany, dto.UpdateSettingsRequest{Values: json.RawMessage(`["not","an","object"]`)}, "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.On("UpsertSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.Section == domain.SettingsCompany
	})).Return(nil).Once()
	settings, err := svc.UpdateSettings(ctx, domain.SettingsCompany, dto.UpdateSettingsRequest{Values: json.RawMessage(`{"name":"Acme"}`)}, "admin-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme"}`, string(settings.Values))
	repo.AssertExpectations(t)
}
