package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttachmentServiceTestSuite struct {
	suite.Suite
	mockAttachmentRepo *MockAttachmentRepository
	mockAssetRepo      *MockAssetRepository
	mockFiles          *MockFileStore
	service            portssvc.AttachmentSvcFacade
}

func (suite *AttachmentServiceTestSuite) SetupTest() {
	suite.mockAttachmentRepo = new(MockAttachmentRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockFiles = new(MockFileStore)
	repos := portsrepo.RepositoryProvider{
		AttachmentRepo: suite.mockAttachmentRepo,
		AssetRepo:      suite.mockAssetRepo,
	}
	suite.service = services.NewAttachmentService(repos, suite.mockFiles, 1024)
}

func (suite *AttachmentServiceTestSuite) input(size int64) portssvc.UploadAttachmentInput {
	return portssvc.UploadAttachmentInput{
		EntityType:  domain.AttachmentAsset,
		EntityID:    "asset-1",
		FileName:    "../../invoice.pdf",
		ContentType: "application/pdf",
		SizeBytes:   size,
		Body:        strings.NewReader("%PDF"),
	}
}

func (suite *AttachmentServiceTestSuite) TestUpload_Success() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, "asset-1").Return(&domain.Asset{AssetID: "asset-1"}, nil).Once()
	suite.mockFiles.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "asset/asset-1/") && strings.HasSuffix(key, "-invoice.pdf")
	}), "application/pdf", mock.Anything).Return(nil).Once()
	suite.mockAttachmentRepo.On("SaveAttachment", ctx, mock.AnythingOfType("domain.Attachment")).Return(nil).Once()

	attachment, err := suite.service.Upload(ctx, suite.input(4), "user")

	suite.Require().NoError(err)
	suite.Equal("invoice.pdf", attachment.FileName)
	suite.mockFiles.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestUpload_MetadataFailureDeletesObject() {
	ctx := context.Background()
	var storedKey string
	suite.mockAssetRepo.On("FindAssetByID", ctx, "asset-1").Return(&domain.Asset{AssetID: "asset-1"}, nil).Once()
	suite.mockFiles.On("Put", ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).Return(nil).Once().Run(func(args mock.Arguments) {
		storedKey = args.String(1)
	})
	suite.mockAttachmentRepo.On("SaveAttachment", ctx, mock.AnythingOfType("domain.Attachment")).Return(assert.AnError).Once()
	suite.mockFiles.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil).Once().Run(func(args mock.Arguments) {
		suite.Equal(storedKey, args.String(1))
	})

	attachment, err := suite.service.Upload(ctx, suite.input(4), "user")

	suite.Require().Error(err)
	suite.Nil(attachment)
	suite.ErrorIs(err, assert.AnError)
	suite.mockFiles.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestUpload_StoreFailure() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, "asset-1").Return(&domain.Asset{AssetID: "asset-1"}, nil).Once()
	suite.mockFiles.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.Upload(ctx, suite.input(4), "user")

	suite.Equal(502, apperrors.StatusCode(err))
	suite.mockAttachmentRepo.AssertNotCalled(suite.T(), "SaveAttachment", mock.Anything, mock.Anything)
}

func (suite *AttachmentServiceTestSuite) TestUpload_Rejections() {
	ctx := context.Background()

	_, err := suite.service.Upload(ctx, suite.input(4096), "user")
	suite.ErrorIs(err, apperrors.ErrValidation, "too large")

	in := suite.input(4)
	in.EntityType = "invoice"
	_, err = suite.service.Upload(ctx, in, "user")
	suite.ErrorIs(err, apperrors.ErrValidation, "bad entity type")

	suite.mockAssetRepo.On("FindAssetByID", ctx, "asset-1").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.Upload(ctx, suite.input(4), "user")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockFiles.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttachmentServiceTestSuite) TestOpenAndDelete() {
	ctx := context.Background()
	stored := &domain.Attachment{AttachmentID: "att-1", StorageKey: "asset/asset-1/k-invoice.pdf"}
	suite.mockAttachmentRepo.On("FindAttachmentByID", ctx, "att-1").Return(stored, nil).Twice()
	suite.mockFiles.On("Get", ctx, stored.StorageKey).Return([]byte("%PDF"), nil).Once()
	suite.mockAttachmentRepo.On("DeleteAttachment", ctx, "att-1").Return(nil).Once()
	suite.mockFiles.On("Delete", ctx, stored.StorageKey).Return(nil).Once()

	meta, body, err := suite.service.Open(ctx, "att-1")
	suite.Require().NoError(err)
	content, _ := io.ReadAll(body)
	suite.Equal("%PDF", string(content))
	suite.Equal(stored, meta)

	suite.Require().NoError(suite.service.DeleteAttachment(ctx, "att-1", "user"))
	suite.mockFiles.AssertExpectations(suite.T())
}

func TestAttachmentService(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
