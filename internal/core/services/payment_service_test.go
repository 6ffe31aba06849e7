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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockServiceRepo *MockServiceRepository
	service         portssvc.PaymentSvcFacade
	svc             *domain.Service
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockServiceRepo)
	suite.svc = &domain.Service{
		ServiceID:       uuid.NewString(),
		ServiceName:     "GitHub",
		Currency:        "INR",
		BillingCycle:    domain.Quarterly,
		NextRenewalDate: ptr(date(2024, time.January, 31)),
		Status:          domain.ServiceActive,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DefaultsFromService() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{Amount: dec("999"), PaymentDate: date(2024, time.January, 30)}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.svc.ServiceID).Return(suite.svc, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Currency == "INR" && p.Status == domain.PaymentPaid && p.ServiceID == suite.svc.ServiceID
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.svc.ServiceID, req, "user")

	suite.Require().NoError(err)
	suite.NotEmpty(payment.PaymentID)
	suite.mockServiceRepo.AssertNotCalled(suite.T(), "UpdateService", mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_AdvancesRenewal() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{Amount: dec("10"), Currency: "usd", PaymentDate: date(2024, time.January, 30), AdvanceRenewal: true}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.svc.ServiceID).Return(suite.svc, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockServiceRepo.On("UpdateService", ctx, mock.MatchedBy(func(s domain.Service) bool {
		// Jan 31 + 3 months normalises to May 1
		return s.NextRenewalDate.Equal(date(2024, time.May, 1))
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.svc.ServiceID, req, "user")

	suite.Require().NoError(err)
	suite.Equal("USD", payment.Currency)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_AdvanceFailureKeepsPayment() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{Amount: dec("10"), PaymentDate: date(2024, time.January, 30), AdvanceRenewal: true}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.svc.ServiceID).Return(suite.svc, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockServiceRepo.On("UpdateService", ctx, mock.AnythingOfType("domain.Service")).Return(assert.AnError).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.svc.ServiceID, req, "user")

	suite.Require().NoError(err)
	suite.NotNil(payment)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Validation() {
	ctx := context.Background()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.svc.ServiceID).Return(suite.svc, nil)

	_, err := suite.service.RecordPayment(ctx, suite.svc.ServiceID, dto.RecordPaymentRequest{Amount: dec("0")}, "user")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecordPayment(ctx, suite.svc.ServiceID, dto.RecordPaymentRequest{Amount: dec("5"), Status: "Lost"}, "user")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownService() {
	ctx := context.Background()
	suite.mockServiceRepo.On("FindServiceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, "missing", dto.RecordPaymentRequest{Amount: dec("5")}, "user")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListPayments() {
	ctx := context.Background()
	next := "token"
	params := dto.ListPaymentsParams{ServiceID: suite.svc.ServiceID, Limit: 2}
	filter := portsrepo.PaymentFilter{ServiceID: suite.svc.ServiceID, Limit: 2}
	payments := []domain.Payment{{PaymentID: "a"}, {PaymentID: "b"}}

	suite.mockPaymentRepo.On("FindPayments", ctx, filter).Return(payments, &next, nil).Once()

	resp, err := suite.service.ListPayments(ctx, params)

	suite.Require().NoError(err)
	suite.Len(resp.Payments, 2)
	suite.Equal(&next, resp.NextToken)
}

func (suite *PaymentServiceTestSuite) TestListPayments_InvertedRange() {
	from, to := date(2024, time.June, 1), date(2024, time.May, 1)
	_, err := suite.service.ListPayments(context.Background(), dto.ListPaymentsParams{From: &from, To: &to, Limit: 10})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
