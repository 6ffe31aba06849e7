package services_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockServiceRepo *MockServiceRepository
	mockPaymentRepo *MockPaymentRepository
	mockNotifier    *MockNotifier
	today           time.Time
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockNotifier = new(MockNotifier)
	now := time.Now()
	suite.today = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (suite *DashboardServiceTestSuite) services() []domain.Service {
	return []domain.Service{
		{ServiceID: "s1", ServiceName: "Figma", Provider: "Figma", Amount: dec("100"), Currency: "USD",
			BillingCycle: domain.Annual, NextRenewalDate: ptr(suite.today), Status: domain.ServiceActive},
		{ServiceID: "s2", ServiceName: "Tally", Provider: "Tally", Amount: dec("830"), Currency: "INR",
			BillingCycle: domain.Annual, NextRenewalDate: ptr(suite.today.AddDate(0, 0, 60)), Status: domain.ServiceActive},
		{ServiceID: "s3", ServiceName: "Old", Provider: "Old", Amount: dec("5"), Currency: "USD",
			BillingCycle: domain.Monthly, NextRenewalDate: ptr(suite.today), Status: domain.ServiceCancelled},
	}
}

func (suite *DashboardServiceTestSuite) TestGetSummary() {
	ctx := context.Background()
	svc := services.NewDashboardService(suite.mockServiceRepo, suite.mockPaymentRepo, currency.Default(), currency.SkipUnknown, nil)

	suite.mockServiceRepo.On("FindServices", mock.Anything, portsrepo.ServiceFilter{}).Return(suite.services(), nil).Once()
	suite.mockPaymentRepo.On("FindPayments", mock.Anything, mock.Anything).Return([]domain.Payment{
		{Amount: dec("50"), Currency: "USD", Status: domain.PaymentPaid},
		{Amount: dec("20"), Currency: "USD", Status: domain.PaymentRefunded},
	}, nil, nil).Once()

	summary, err := svc.GetSummary(ctx, 30)

	suite.Require().NoError(err)
	suite.Equal(3, summary.TotalServices)
	suite.Equal(2, summary.ActiveServices)
	suite.Equal(1, summary.ThisMonth.RenewalCount)
	suite.True(summary.PaymentsThisYear.ConvertedToUSD.Equal(dec("50")))
	suite.Require().Len(summary.UpcomingRenewals, 1)
	suite.Equal("s1", summary.UpcomingRenewals[0].ServiceID)
}

func (suite *DashboardServiceTestSuite) TestGetSummary_RepoError() {
	svc := services.NewDashboardService(suite.mockServiceRepo, suite.mockPaymentRepo, currency.Default(), currency.SkipUnknown, nil)
	suite.mockServiceRepo.On("FindServices", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockPaymentRepo.On("FindPayments", mock.Anything, mock.Anything).Return(nil, nil, nil).Maybe()

	_, err := svc.GetSummary(context.Background(), 30)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *DashboardServiceTestSuite) TestSendRenewalDigest() {
	ctx := context.Background()
	svc := services.NewDashboardService(suite.mockServiceRepo, suite.mockPaymentRepo, currency.Default(), currency.SkipUnknown, suite.mockNotifier)

	suite.mockServiceRepo.On("FindServices", ctx, portsrepo.ServiceFilter{Status: domain.ServiceActive}).Return(suite.services(), nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "Figma") && strings.Contains(msg, "100.00 USD") && !strings.Contains(msg, "Tally")
	})).Return(nil).Once()

	resp, err := svc.SendRenewalDigest(ctx, 30)

	suite.Require().NoError(err)
	suite.True(resp.Sent)
	suite.Equal(1, resp.Renewals)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestSendRenewalDigest_NothingDue() {
	ctx := context.Background()
	svc := services.NewDashboardService(suite.mockServiceRepo, suite.mockPaymentRepo, currency.Default(), currency.SkipUnknown, suite.mockNotifier)
	suite.mockServiceRepo.On("FindServices", ctx, mock.Anything).Return([]domain.Service{}, nil).Once()

	resp, err := svc.SendRenewalDigest(ctx, 7)

	suite.Require().NoError(err)
	suite.False(resp.Sent)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestSendRenewalDigest_NoChannel() {
	svc := services.NewDashboardService(suite.mockServiceRepo, suite.mockPaymentRepo, currency.Default(), currency.SkipUnknown, nil)

	_, err := svc.SendRenewalDigest(context.Background(), 7)

	suite.Equal(http.StatusServiceUnavailable, apperrors.StatusCode(err))
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
