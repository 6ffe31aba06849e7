package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
func (m *MockSubscriptionService) ListServices(ctx context.Context, params dto.ListServicesParams) ([]domain.Service, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}
func (m *MockSubscriptionService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
func (m *MockSubscriptionService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, requestingUserID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
func (m *MockSubscriptionService) DeleteService(ctx context.Context, serviceID string, requestingUserID string) error {
	args := m.Called(ctx, serviceID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, filename string, data []byte, creatorUserID string) (*dto.ImportResult, error) {
	args := m.Called(ctx, filename, data, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportResult), args.Error(1)
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router                  *gin.Engine
	cfg                     *config.Config
	registry                *modules.Registry
	mockSubscriptionService *MockSubscriptionService
	mockImportService       *MockImportService
}

func (suite *HandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.cfg.JWTSecret, time.Hour, "backoffice-test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		IsProduction:       true,
		JWTSecret:          "test-secret-for-handlers",
		ImportMaxBytes:     1024,
		AttachmentMaxBytes: 1024,
		LoginRateLimit:     "100-M",
		ImportRateLimit:    "100-M",
	}

	var err error
	suite.registry, err = modules.NewDefaultRegistry([]string{"subscriptions", "payments", "imports"})
	suite.Require().NoError(err)

	suite.mockSubscriptionService = new(MockSubscriptionService)
	suite.mockImportService = new(MockImportService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Subscription: suite.mockSubscriptionService,
		Import:       suite.mockImportService,
		Modules:      suite.registry,
	})
}

func (suite *HandlerTestSuite) do(req *http.Request, userID string, role domain.Role) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, role))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func errorBody(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body.Error
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/services", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSubscriptionService.AssertNotCalled(suite.T(), "ListServices", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListServices_Success() {
	userID := uuid.NewString()
	expected := []domain.Service{
		{ServiceID: uuid.NewString(), ServiceName: "Figma", Amount: decimal.NewFromInt(15), Currency: "USD", BillingCycle: domain.Monthly, Status: domain.ServiceActive},
		{ServiceID: uuid.NewString(), ServiceName: "GitHub", Amount: decimal.NewFromInt(210), Currency: "USD", BillingCycle: domain.Annual, Status: domain.ServiceActive},
	}

	suite.mockSubscriptionService.On("ListServices",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListServicesParams) bool {
			return p.Status == "active" && p.Search == "git"
		}),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/services?status=active&q=git", nil)
	w := suite.do(req, userID, domain.RoleViewer)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListServicesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Services, 2)
	suite.Equal(expected[1].ServiceID, body.Services[1].ServiceID)
	suite.mockSubscriptionService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetService_NotFound() {
	serviceID := uuid.NewString()
	suite.mockSubscriptionService.On("GetServiceByID", mock.Anything, serviceID).
		Return(nil, apperrors.NewNotFoundError("Service not found")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/services/"+serviceID, nil)
	w := suite.do(req, uuid.NewString(), domain.RoleViewer)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Service not found", errorBody(w))
}

func (suite *HandlerTestSuite) TestCreateService_ViewerForbidden() {
	body := `{"serviceName":"Slack","currency":"USD","billingCycle":"monthly","amount":"8"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req, uuid.NewString(), domain.RoleViewer)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSubscriptionService.AssertNotCalled(suite.T(), "CreateService", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateService_Manager() {
	userID := uuid.NewString()
	created := &domain.Service{ServiceID: uuid.NewString(), ServiceName: "Slack", Amount: decimal.NewFromInt(8), Currency: "USD", BillingCycle: domain.Monthly}

	suite.mockSubscriptionService.On("CreateService",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateServiceRequest) bool {
			return r.ServiceName == "Slack" && r.Amount.Equal(decimal.NewFromInt(8))
		}),
		userID,
	).Return(created, nil).Once()

	body := `{"serviceName":"Slack","currency":"USD","billingCycle":"monthly","amount":"8"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req, userID, domain.RoleManager)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSubscriptionService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateService_InvalidBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/services", strings.NewReader(`{"serviceName":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req, uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.HasPrefix(errorBody(w), "Invalid request format"))
}

func (suite *HandlerTestSuite) TestDisabledModuleRoutesAreHidden() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	w := suite.do(req, uuid.NewString(), domain.RoleAdmin)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.Require().NoError(suite.registry.Disable(modules.Payments))
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/payments", nil)
	w = suite.do(req, uuid.NewString(), domain.RoleAdmin)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) newUpload(filename string, content []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (suite *HandlerTestSuite) TestImport_Success() {
	userID := uuid.NewString()
	content := []byte("serviceName,amount,currency,billingCycle\nFigma,15,USD,monthly\nBroken,,USD,monthly\n")
	result := &dto.ImportResult{RecordType: "services", Total: 2, Imported: 1, Failed: 1, Errors: []string{"row 2: amount is required"}}

	suite.mockImportService.On("Import", mock.Anything, "services.csv", content, userID).Return(result, nil).Once()

	w := suite.do(suite.newUpload("services.csv", content), userID, domain.RoleManager)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ImportResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(1, body.Imported)
	suite.Equal(1, body.Failed)
	suite.mockImportService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestImport_TooLarge() {
	content := bytes.Repeat([]byte("a"), 2048)
	w := suite.do(suite.newUpload("services.csv", content), uuid.NewString(), domain.RoleManager)

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
	suite.mockImportService.AssertNotCalled(suite.T(), "Import", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestImport_MissingFile() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := suite.do(req, uuid.NewString(), domain.RoleManager)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestModuleToggle() {
	admin := uuid.NewString()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/modules/subscriptions", strings.NewReader(`{"enabled":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req, admin, domain.RoleAdmin)
	suite.Equal(http.StatusConflict, w.Code)
	suite.True(suite.registry.IsEnabled(modules.Subscriptions))

	req, _ = http.NewRequest(http.MethodPut, "/api/v1/modules/depreciation", strings.NewReader(`{"enabled":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = suite.do(req, admin, domain.RoleAdmin)
	suite.Equal(http.StatusConflict, w.Code)

	req, _ = http.NewRequest(http.MethodPut, "/api/v1/modules/unknown", strings.NewReader(`{"enabled":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = suite.do(req, admin, domain.RoleAdmin)
	suite.Equal(http.StatusNotFound, w.Code)

	req, _ = http.NewRequest(http.MethodPut, "/api/v1/modules/vendors", strings.NewReader(`{"enabled":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = suite.do(req, admin, domain.RoleAdmin)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(suite.registry.IsEnabled(modules.Vendors))
}

func (suite *HandlerTestSuite) TestModuleToggle_ManagerForbidden() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/modules/vendors", strings.NewReader(`{"enabled":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req, uuid.NewString(), domain.RoleManager)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.False(suite.registry.IsEnabled(modules.Vendors))
}

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
