package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// DashboardSvc computes headline statistics.
type DashboardSvc interface {
	GetSummary(ctx context.Context, upcomingDays int) (*domain.DashboardSummary, error)

	// SendRenewalDigest notifies the configured channel about renewals due within upcomingDays.
	SendRenewalDigest(ctx context.Context, upcomingDays int) (*dto.RenewalDigestResponse, error)
}
