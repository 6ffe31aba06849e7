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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DepreciationServiceTestSuite struct {
	suite.Suite
	mockAssetRepo *MockAssetRepository
	mockDepRepo   *MockDepreciationRepository
	service       portssvc.DepreciationSvcFacade
	asset         *domain.Asset
}

func (suite *DepreciationServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockDepRepo = new(MockDepreciationRepository)
	suite.service = services.NewDepreciationService(suite.mockAssetRepo, suite.mockDepRepo)
	suite.asset = &domain.Asset{
		AssetID:          uuid.NewString(),
		Name:             "Laptop",
		PurchaseCost:     dec("10000"),
		CurrentBookValue: dec("10000"),
		Currency:         "USD",
	}
}

func (suite *DepreciationServiceTestSuite) schedule() *domain.DepreciationSchedule {
	return &domain.DepreciationSchedule{
		DepreciationID:  uuid.NewString(),
		AssetID:         suite.asset.AssetID,
		Method:          domain.StraightLine,
		UsefulLifeYears: 5,
		SalvageValue:    dec("1000"),
		StartDate:       date(2024, time.January, 1),
	}
}

func (suite *DepreciationServiceTestSuite) TestCreateSchedule_Success() {
	ctx := context.Background()
	req := dto.CreateDepreciationRequest{
		Method:          domain.StraightLine,
		UsefulLifeYears: 5,
		SalvageValue:    dec("1000"),
		StartDate:       date(2024, time.January, 1),
	}

	suite.mockAssetRepo.On("FindAssetByID", ctx, suite.asset.AssetID).Return(suite.asset, nil).Once()
	suite.mockDepRepo.On("SaveSchedule", ctx, mock.MatchedBy(func(s domain.DepreciationSchedule) bool {
		return s.AssetID == suite.asset.AssetID && s.UsefulLifeYears == 5
	})).Return(nil).Once()

	resp, err := suite.service.CreateSchedule(ctx, suite.asset.AssetID, req, "user")

	suite.Require().NoError(err)
	suite.True(resp.Result.Annual.Equal(dec("1800")))
	suite.Len(resp.Table, 5)
	suite.True(resp.Table[4].EndingBookValue.Equal(dec("1000")))
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestCreateSchedule_RejectsInvalidInput() {
	ctx := context.Background()

	_, err := suite.service.CreateSchedule(ctx, suite.asset.AssetID, dto.CreateDepreciationRequest{
		Method: domain.StraightLine, UsefulLifeYears: 0, StartDate: date(2024, time.January, 1),
	}, "user")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockAssetRepo.On("FindAssetByID", ctx, suite.asset.AssetID).Return(suite.asset, nil).Once()
	_, err = suite.service.CreateSchedule(ctx, suite.asset.AssetID, dto.CreateDepreciationRequest{
		Method: domain.StraightLine, UsefulLifeYears: 3, SalvageValue: dec("20000"), StartDate: date(2024, time.January, 1),
	}, "user")
	suite.ErrorIs(err, apperrors.ErrValidation, "salvage above cost")

	suite.mockDepRepo.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestCreateSchedule_Duplicate() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, suite.asset.AssetID).Return(suite.asset, nil).Once()
	suite.mockDepRepo.On("SaveSchedule", ctx, mock.AnythingOfType("domain.DepreciationSchedule")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateSchedule(ctx, suite.asset.AssetID, dto.CreateDepreciationRequest{
		Method: domain.DecliningBalance, UsefulLifeYears: 4, StartDate: date(2024, time.January, 1),
	}, "user")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *DepreciationServiceTestSuite) TestGetDepreciation_AsOf() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, suite.asset.AssetID).Return(suite.asset, nil).Once()
	suite.mockDepRepo.On("FindScheduleByAssetID", ctx, suite.asset.AssetID).Return(suite.schedule(), nil).Once()

	resp, err := suite.service.GetDepreciation(ctx, suite.asset.AssetID, date(2024, time.July, 1))

	suite.Require().NoError(err)
	suite.Equal(6, resp.Result.MonthsElapsed)
	suite.True(resp.Result.Accumulated.Equal(dec("900")))
	suite.True(resp.Result.DerivedBookValue.Equal(dec("9100")))
}

func (suite *DepreciationServiceTestSuite) TestGetDepreciation_NoSchedule() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, suite.asset.AssetID).Return(suite.asset, nil).Once()
	suite.mockDepRepo.On("FindScheduleByAssetID", ctx, suite.asset.AssetID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetDepreciation(ctx, suite.asset.AssetID, time.Time{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DepreciationServiceTestSuite) TestSyncBookValue() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, suite.asset.AssetID).Return(suite.asset, nil).Once()
	suite.mockDepRepo.On("FindScheduleByAssetID", ctx, suite.asset.AssetID).Return(suite.schedule(), nil).Once()
	suite.mockAssetRepo.On("UpdateBookValue", ctx, suite.asset.AssetID, mock.MatchedBy(func(v decimal.Decimal) bool {
		return v.Equal(dec("8200"))
	}), "user").Return(nil).Once()

	asset, err := suite.service.SyncBookValue(ctx, suite.asset.AssetID, date(2025, time.January, 1), "user")

	suite.Require().NoError(err)
	suite.True(asset.CurrentBookValue.Equal(dec("8200")))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func TestDepreciationService(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}

// Asset reads in schedule mode report the derived book value.
type AssetServiceTestSuite struct {
	suite.Suite
	mockAssetRepo *MockAssetRepository
	mockDepRepo   *MockDepreciationRepository
	service       portssvc.AssetSvcFacade
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockDepRepo = new(MockDepreciationRepository)
	suite.service = services.NewAssetService(suite.mockAssetRepo, nil, nil, suite.mockDepRepo, nil, services.BookValueSchedule)
}

func (suite *AssetServiceTestSuite) TestListAssets_ScheduleMode() {
	ctx := context.Background()
	assets := []domain.Asset{
		{AssetID: "a1", PurchaseCost: dec("1200"), CurrentBookValue: dec("1200"), Currency: "USD"},
		{AssetID: "a2", PurchaseCost: dec("500"), CurrentBookValue: dec("450"), Currency: "USD"},
	}
	schedules := map[string]domain.DepreciationSchedule{
		"a1": {AssetID: "a1", Method: domain.StraightLine, UsefulLifeYears: 1, StartDate: date(2000, time.January, 1)},
	}

	suite.mockAssetRepo.On("FindAssets", ctx, portsrepo.AssetFilter{}).Return(assets, nil).Once()
	suite.mockDepRepo.On("FindSchedulesByAssetIDs", ctx, []string{"a1", "a2"}).Return(schedules, nil).Once()

	list, err := suite.service.ListAssets(ctx, dto.ListAssetsParams{})

	suite.Require().NoError(err)
	suite.True(list[0].CurrentBookValue.IsZero(), "fully depreciated")
	suite.True(list[1].CurrentBookValue.Equal(dec("450")), "no schedule keeps the stored value")
}

func (suite *AssetServiceTestSuite) TestCreateAsset_BookValueDefaultsToCost() {
	ctx := context.Background()
	suite.mockAssetRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, dto.CreateAssetRequest{Name: "Desk", PurchaseCost: dec("300"), Currency: "gbp"}, "user")

	suite.Require().NoError(err)
	suite.True(asset.CurrentBookValue.Equal(dec("300")))
	suite.Equal("GBP", asset.Currency)
	suite.Equal(domain.AssetActive, asset.Status)
	suite.Equal(domain.ConditionGood, asset.Condition)
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_RejectsUnknownStatus() {
	ctx := context.Background()
	status := domain.AssetStatus("Lost")
	suite.mockAssetRepo.On("FindAssetByID", ctx, "a1").Return(&domain.Asset{
		AssetID: "a1", Name: "Desk", Currency: "USD", Status: domain.AssetActive, Condition: domain.ConditionGood,
	}, nil).Once()

	_, err := suite.service.UpdateAsset(ctx, "a1", dto.UpdateAssetRequest{Status: &status}, "user")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "UpdateAsset", mock.Anything, mock.Anything)
}

func TestAssetService(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
