package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockServiceRepo *MockServiceRepository
	mockFiles       *MockFileStore
	service         portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockFiles = new(MockFileStore)
	suite.service = services.NewSubscriptionService(suite.mockServiceRepo, suite.mockFiles)
}

func (suite *SubscriptionServiceTestSuite) TestCreateService_Defaults() {
	ctx := context.Background()
	renewal := date(2030, time.March, 1)
	req := dto.CreateServiceRequest{
		ServiceName:     " Slack ",
		Provider:        "Salesforce",
		Amount:          dec("12.50"),
		Currency:        "eur",
		BillingCycle:    domain.Monthly,
		CustomCycleDays: ptr(10),
		NextRenewalDate: &renewal,
	}

	suite.mockServiceRepo.On("SaveService", ctx, mock.MatchedBy(func(s domain.Service) bool {
		return s.ServiceName == "Slack" && s.Currency == "EUR" && s.Status == domain.ServiceActive
	})).Return(nil).Once()

	svc, err := suite.service.CreateService(ctx, req, "creator")

	suite.Require().NoError(err)
	suite.NotEmpty(svc.ServiceID)
	suite.Nil(svc.CustomCycleDays, "custom days are dropped for non-custom cycles")
	suite.Equal(renewal, *svc.NextRenewalDate)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCreateService_DerivesRenewalFromStartDate() {
	ctx := context.Background()
	start := time.Now().AddDate(-1, 0, -10)
	req := dto.CreateServiceRequest{
		ServiceName:  "Jira",
		Currency:     "USD",
		BillingCycle: domain.Quarterly,
		StartDate:    &start,
	}

	suite.mockServiceRepo.On("SaveService", ctx, mock.AnythingOfType("domain.Service")).Return(nil).Once()

	svc, err := suite.service.CreateService(ctx, req, "creator")

	suite.Require().NoError(err)
	suite.Require().NotNil(svc.NextRenewalDate)
	now := time.Now()
	suite.False(svc.NextRenewalDate.Before(now.AddDate(0, 0, -1)))
	suite.True(svc.NextRenewalDate.Before(now.AddDate(0, 3, 1)))
}

func (suite *SubscriptionServiceTestSuite) TestCreateService_Validation() {
	tests := []struct {
		name string
		req  dto.CreateServiceRequest
	}{
		{name: "custom days missing", req: dto.CreateServiceRequest{ServiceName: "A", Currency: "USD", BillingCycle: domain.CustomDays}},
		{name: "unknown cycle", req: dto.CreateServiceRequest{ServiceName: "A", Currency: "USD", BillingCycle: "Weekly"}},
		{name: "negative amount", req: dto.CreateServiceRequest{ServiceName: "A", Currency: "USD", BillingCycle: domain.Annual, Amount: dec("-1")}},
		{name: "bad status", req: dto.CreateServiceRequest{ServiceName: "A", Currency: "USD", BillingCycle: domain.Annual, Status: "Gone"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateService(context.Background(), tt.req, "creator")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockServiceRepo.AssertNotCalled(suite.T(), "SaveService", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestUpdateService_SwitchToCustomDays() {
	ctx := context.Background()
	id := uuid.NewString()
	existing := &domain.Service{ServiceID: id, ServiceName: "Zoom", Currency: "USD", BillingCycle: domain.Monthly, Status: domain.ServiceActive}
	cycle := domain.CustomDays

	suite.mockServiceRepo.On("FindServiceByID", ctx, id).Return(existing, nil).Once()
	suite.mockServiceRepo.On("UpdateService", ctx, mock.MatchedBy(func(s domain.Service) bool {
		return s.BillingCycle == domain.CustomDays && *s.CustomCycleDays == 45 && s.LastUpdatedBy == "editor"
	})).Return(nil).Once()

	svc, err := suite.service.UpdateService(ctx, id, dto.UpdateServiceRequest{BillingCycle: &cycle, CustomCycleDays: ptr(45)}, "editor")

	suite.Require().NoError(err)
	suite.Equal(domain.CustomDays, svc.BillingCycle)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestListServices_UnknownStatus() {
	_, err := suite.service.ListServices(context.Background(), dto.ListServicesParams{Status: "Sleeping"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubscriptionServiceTestSuite) TestListServices_PassesFilter() {
	ctx := context.Background()
	filter := portsrepo.ServiceFilter{Status: domain.ServicePaused, Search: "git"}

	suite.mockServiceRepo.On("FindServices", ctx, filter).Return(nil, nil).Once()

	list, err := suite.service.ListServices(ctx, dto.ListServicesParams{Status: "Paused", Search: " git "})

	suite.Require().NoError(err)
	suite.NotNil(list)
	suite.Empty(list)
}

func (suite *SubscriptionServiceTestSuite) TestDeleteService_RemovesStoredFiles() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockServiceRepo.On("DeleteService", ctx, id).Return([]string{"service/a/1-x.pdf", "service/a/2-y.pdf"}, nil).Once()
	suite.mockFiles.On("Delete", ctx, "service/a/1-x.pdf").Return(assert.AnError).Once()
	suite.mockFiles.On("Delete", ctx, "service/a/2-y.pdf").Return(nil).Once()

	err := suite.service.DeleteService(ctx, id, "admin")

	suite.Require().NoError(err, "object deletion failures are only logged")
	suite.mockFiles.AssertExpectations(suite.T())
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
