package services_test

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	return m.Called(ctx, userID, deletedAt, deletedBy).Error(0)
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

// --- MockServiceRepository ---
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	var svc *domain.Service
	if args.Get(0) != nil {
		svc = args.Get(0).(*domain.Service)
	}
	return svc, args.Error(1)
}

func (m *MockServiceRepository) FindServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	args := m.Called(ctx, name)
	var svc *domain.Service
	if args.Get(0) != nil {
		svc = args.Get(0).(*domain.Service)
	}
	return svc, args.Error(1)
}

func (m *MockServiceRepository) FindServices(ctx context.Context, filter portsrepo.ServiceFilter) ([]domain.Service, error) {
	args := m.Called(ctx, filter)
	var services []domain.Service
	if args.Get(0) != nil {
		services = args.Get(0).([]domain.Service)
	}
	return services, args.Error(1)
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, serviceID string) ([]string, error) {
	args := m.Called(ctx, serviceID)
	var keys []string
	if args.Get(0) != nil {
		keys = args.Get(0).([]string)
	}
	return keys, args.Error(1)
}

// --- MockPaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	var p *domain.Payment
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Payment)
	}
	return p, args.Error(1)
}

func (m *MockPaymentRepository) FindPayments(ctx context.Context, filter portsrepo.PaymentFilter) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, filter)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return payments, next, args.Error(2)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

// --- MockVendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	var v *domain.Vendor
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Vendor)
	}
	return v, args.Error(1)
}

func (m *MockVendorRepository) FindVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error) {
	args := m.Called(ctx, activeOnly)
	var vendors []domain.Vendor
	if args.Get(0) != nil {
		vendors = args.Get(0).([]domain.Vendor)
	}
	return vendors, args.Error(1)
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) DeleteVendor(ctx context.Context, vendorID string) ([]string, error) {
	args := m.Called(ctx, vendorID)
	var keys []string
	if args.Get(0) != nil {
		keys = args.Get(0).([]string)
	}
	return keys, args.Error(1)
}

// --- MockAssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	var a *domain.Asset
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Asset)
	}
	return a, args.Error(1)
}

func (m *MockAssetRepository) FindAssets(ctx context.Context, filter portsrepo.AssetFilter) ([]domain.Asset, error) {
	args := m.Called(ctx, filter)
	var assets []domain.Asset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.Asset)
	}
	return assets, args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) UpdateBookValue(ctx context.Context, assetID string, bookValue decimal.Decimal, updatedBy string) error {
	return m.Called(ctx, assetID, bookValue, updatedBy).Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) ([]string, error) {
	args := m.Called(ctx, assetID)
	var keys []string
	if args.Get(0) != nil {
		keys = args.Get(0).([]string)
	}
	return keys, args.Error(1)
}

// --- MockDepreciationRepository ---
type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) FindScheduleByAssetID(ctx context.Context, assetID string) (*domain.DepreciationSchedule, error) {
	args := m.Called(ctx, assetID)
	var s *domain.DepreciationSchedule
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.DepreciationSchedule)
	}
	return s, args.Error(1)
}

func (m *MockDepreciationRepository) FindSchedulesByAssetIDs(ctx context.Context, assetIDs []string) (map[string]domain.DepreciationSchedule, error) {
	args := m.Called(ctx, assetIDs)
	var out map[string]domain.DepreciationSchedule
	if args.Get(0) != nil {
		out = args.Get(0).(map[string]domain.DepreciationSchedule)
	}
	return out, args.Error(1)
}

func (m *MockDepreciationRepository) SaveSchedule(ctx context.Context, schedule domain.DepreciationSchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

// --- MockAttachmentRepository ---
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	return m.Called(ctx, attachment).Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	var a *domain.Attachment
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Attachment)
	}
	return a, args.Error(1)
}

func (m *MockAttachmentRepository) FindAttachments(ctx context.Context, entityType domain.AttachmentEntity, entityID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, entityType, entityID)
	var out []domain.Attachment
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Attachment)
	}
	return out, args.Error(1)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	return m.Called(ctx, attachmentID).Error(0)
}

// --- MockSettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context, section domain.SettingsSection) (*domain.Settings, error) {
	args := m.Called(ctx, section)
	var s *domain.Settings
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Settings)
	}
	return s, args.Error(1)
}

func (m *MockSettingsRepository) UpsertSettings(ctx context.Context, settings domain.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

// --- MockExchangeRateReader ---
type MockExchangeRateReader struct {
	mock.Mock
}

func (m *MockExchangeRateReader) FindLatestRatesFromUSD(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	var rates []domain.ExchangeRate
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.ExchangeRate)
	}
	return rates, args.Error(1)
}

// --- MockFileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	return m.Called(ctx, key, contentType, body).Error(0)
}

func (m *MockFileStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return io.NopCloser(bytes.NewReader(args.Get(0).([]byte))), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- MockNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- MockPageLayoutRepository ---
type MockPageLayoutRepository struct {
	mock.Mock
}

func (m *MockPageLayoutRepository) FindLayoutByID(ctx context.Context, layoutID string) (*domain.PageLayout, error) {
	args := m.Called(ctx, layoutID)
	var l *domain.PageLayout
	if args.Get(0) != nil {
		l = args.Get(0).(*domain.PageLayout)
	}
	return l, args.Error(1)
}

func (m *MockPageLayoutRepository) FindLayouts(ctx context.Context, pageKey string) ([]domain.PageLayout, error) {
	args := m.Called(ctx, pageKey)
	var layouts []domain.PageLayout
	if args.Get(0) != nil {
		layouts = args.Get(0).([]domain.PageLayout)
	}
	return layouts, args.Error(1)
}

func (m *MockPageLayoutRepository) SaveLayout(ctx context.Context, layout domain.PageLayout) error {
	return m.Called(ctx, layout).Error(0)
}

func (m *MockPageLayoutRepository) UpdateLayout(ctx context.Context, layout domain.PageLayout) error {
	return m.Called(ctx, layout).Error(0)
}

func (m *MockPageLayoutRepository) DeleteLayout(ctx context.Context, layoutID string) error {
	return m.Called(ctx, layoutID).Error(0)
}

// --- MockGoogleAuth ---
type MockGoogleAuth struct {
	mock.Mock
}

func (m *MockGoogleAuth) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, idToken)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}

func (m *MockGoogleAuth) LoginURL(state string) string {
	return m.Called(state).String(0)
}

func (m *MockGoogleAuth) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, code)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}
