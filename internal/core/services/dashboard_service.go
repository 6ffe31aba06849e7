package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/SscSPs/backoffice_app/internal/utils/renewal"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	rates       *currency.RateTable
	policy      currency.Policy
	notifier    portsrepo.Notifier
}

// NewDashboardService creates the dashboard service. notifier may be nil when
// no notification channel is configured.
func NewDashboardService(
	serviceRepo portsrepo.ServiceRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	rates *currency.RateTable,
	policy currency.Policy,
	notifier portsrepo.Notifier,
) portssvc.DashboardSvc {
	return &dashboardService{
		serviceRepo: serviceRepo,
		paymentRepo: paymentRepo,
		rates:       rates,
		policy:      policy,
		notifier:    notifier,
	}
}

func (s *dashboardService) GetSummary(ctx context.Context, upcomingDays int) (*domain.DashboardSummary, error) {
	now := s.Now()
	year := renewal.YearWindow(now.Year(), time.UTC)
	month := renewal.MonthWindow(now.Year(), now.Month(), time.UTC)

	var services []domain.Service
	var payments []domain.Payment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		services, err = s.serviceRepo.FindServices(gctx, portsrepo.ServiceFilter{})
		if err != nil {
			return fmt.Errorf("failed to load services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		payments, _, err = s.paymentRepo.FindPayments(gctx, portsrepo.PaymentFilter{From: &year.Start, To: &year.End})
		if err != nil {
			return fmt.Errorf("failed to load payments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard data")
		return nil, err
	}

	summary := &domain.DashboardSummary{AsOf: now, TotalServices: len(services)}
	for _, svc := range services {
		if svc.IsActive() {
			summary.ActiveServices++
		}
	}

	var err error
	if summary.ThisMonth, _, err = renewal.ProjectAll(services, month, s.rates, s.policy); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if summary.ThisYear, _, err = renewal.ProjectAll(services, year, s.rates, s.policy); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	amounts := make([]domain.MoneyAmount, 0, len(payments))
	for _, p := range payments {
		if p.Status == domain.PaymentPaid {
			amounts = append(amounts, domain.MoneyAmount{Amount: p.Amount, Currency: p.Currency})
		}
	}
	if summary.PaymentsThisYear, err = s.rates.Aggregate(amounts, s.policy); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	summary.UpcomingRenewals = upcoming(services, now, upcomingDays)
	return summary, nil
}

func (s *dashboardService) SendRenewalDigest(ctx context.Context, upcomingDays int) (*dto.RenewalDigestResponse, error) {
	if s.notifier == nil {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "no notification channel is configured", nil)
	}
	services, err := s.serviceRepo.FindServices(ctx, portsrepo.ServiceFilter{Status: domain.ServiceActive})
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	renewals := upcoming(services, s.Now(), upcomingDays)
	if len(renewals) == 0 {
		return &dto.RenewalDigestResponse{Sent: false, Message: fmt.Sprintf("No renewals due in the next %d days", upcomingDays)}, nil
	}

	message := digestMessage(renewals, upcomingDays)
	if err := s.notifier.Notify(ctx, message); err != nil {
		s.LogError(ctx, err, "Failed to send renewal digest", slog.Int("renewals", len(renewals)))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "failed to send renewal digest", err)
	}
	s.LogInfo(ctx, "Renewal digest sent", slog.Int("renewals", len(renewals)))
	return &dto.RenewalDigestResponse{Sent: true, Renewals: len(renewals), Message: message}, nil
}

// upcoming lists active services renewing between today and days from now, soonest first.
func upcoming(services []domain.Service, now time.Time, days int) []domain.UpcomingRenewal {
	if days <= 0 {
		days = 30
	}
	start := renewal.Day(now)
	w := renewal.Window{Start: start, End: start.AddDate(0, 0, days)}

	out := []domain.UpcomingRenewal{}
	for _, svc := range services {
		if !svc.IsActive() || svc.NextRenewalDate == nil || !w.Contains(*svc.NextRenewalDate) {
			continue
		}
		out = append(out, domain.UpcomingRenewal{
			ServiceID:   svc.ServiceID,
			ServiceName: svc.ServiceName,
			Provider:    svc.Provider,
			RenewalDate: *svc.NextRenewalDate,
			Amount:      svc.RenewalAmount(),
			Currency:    currency.Normalize(svc.Currency),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RenewalDate.Before(out[j].RenewalDate) })
	return out
}

func digestMessage(renewals []domain.UpcomingRenewal, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Upcoming renewals (next %d days): %d\n", days, len(renewals))
	for _, r := range renewals {
		fmt.Fprintf(&b, "- %s: %s (%s) %s %s\n",
			r.RenewalDate.Format("2006-01-02"), r.ServiceName, r.Provider, utils.FormatMoney(r.Amount, r.Currency), r.Currency)
	}
	return strings.TrimRight(b.String(), "\n")
}
