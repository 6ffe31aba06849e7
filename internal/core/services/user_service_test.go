package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{
		Username: "jdoe",
		Password: "password123",
		FullName: "Jane Doe",
		Email:    " Jane@Example.com ",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "jdoe" && user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal("jane@example.com", created.Email)
	suite.Equal(domain.RoleViewer, created.Role)
	suite.True(created.IsActive)
	suite.Equal(creatorID, created.CreatedBy)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "taken", Password: "password123", FullName: "Taken"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(&domain.User{UserID: uuid.NewString()}, nil).Once()

	created, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "save-error", Password: "password123", FullName: "Save Error"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "save-error").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	created, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListUsers Tests ---
func (suite *UserServiceTestSuite) TestListUsers_Empty() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsers", ctx, 5, 10).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(ctx, 5, 10)

	suite.Require().NoError(err)
	suite.Require().NotNil(users)
	suite.Empty(users)
}

func (suite *UserServiceTestSuite) TestListUsers_RepoError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsers", ctx, 10, 0).Return(nil, assert.AnError).Once()

	users, err := suite.service.ListUsers(ctx, 10, 0)

	suite.Require().Error(err)
	suite.Nil(users)
	suite.Contains(err.Error(), "failed to list users")
	suite.ErrorIs(err, assert.AnError)
}

// --- UpdateUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()
	newName := "Updated Name"
	manager := domain.RoleManager
	original := &domain.User{
		UserID:   userID,
		FullName: "Original Name",
		Role:     domain.RoleViewer,
		IsActive: true,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: time.Now().Add(-time.Hour),
			LastUpdatedBy: "somebodyElse",
		},
	}
	originalTimestamp := original.LastUpdatedAt

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(original, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		userArg := args.Get(1).(domain.User)
		suite.Equal(newName, userArg.FullName)
		suite.Equal(domain.RoleManager, userArg.Role)
		suite.Equal(adminID, userArg.LastUpdatedBy)
		suite.True(userArg.LastUpdatedAt.After(originalTimestamp))
	})

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{FullName: &newName, Role: &manager}, adminID)

	suite.Require().NoError(err)
	suite.Equal(newName, user.FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NoChange() {
	ctx := context.Background()
	userID := uuid.NewString()
	name := "Same Name"
	original := &domain.User{UserID: userID, FullName: name}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(original, nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{FullName: &name}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(original, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OwnRoleIsForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	admin := domain.RoleAdmin

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Role: domain.RoleManager}, nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &admin}, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateUser_SelfDeactivationIsForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()

	_, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{IsActive: ptr(false)}, userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- DeleteUser Tests ---
func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	deleterID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), deleterID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, deleterID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	userID := uuid.NewString()

	err := suite.service.DeleteUser(context.Background(), userID, userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "jdoe", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(user, nil).Twice()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "jdoe", "correct-horse")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "jdoe", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "ghost", "anything")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_CreatesMissingAdmin() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "root").Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "root" && u.Role == domain.RoleAdmin && u.CreatedBy == u.UserID
	})).Return(nil).Once()

	err := services.EnsureBootstrapAdmin(ctx, suite.service, "root", "password123")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_ExistingUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "root").Return(&domain.User{Username: "root"}, nil).Once()

	suite.Require().NoError(services.EnsureBootstrapAdmin(ctx, suite.service, "root", "password123"))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
