package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService issues JWT access tokens and opaque refresh tokens.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userService: userService}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new random refresh token. Only its hash is ever stored.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return raw, s.Now().Add(s.cfg.RefreshTokenExpiryDuration), nil
}

// ValidateRefreshToken checks refreshToken against the hash stored for userID.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}
	if !user.IsActive || user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if s.Now().After(*user.RefreshTokenExpiryTime) {
		s.LogInfo(ctx, "Refresh token expired", slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: refresh token expired", apperrors.ErrUnauthorized)
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// googleAuthService verifies Google identities, either from a client-side ID
// token or from the server-side authorization code flow.
type googleAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// NewGoogleAuthService creates the Google identity verifier.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

func (s *googleAuthService) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, apperrors.NewAppError(503, "google sign-in is not configured", nil)
	}
	payload, err := s.validate(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}
	info := &domain.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, fmt.Errorf("%w: google email is not verified", apperrors.ErrUnauthorized)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: google token carries no email", apperrors.ErrUnauthorized)
	}
	return info, nil
}

func (s *googleAuthService) LoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange oauth code: %v", apperrors.ErrUnauthorized, err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: google response carried no id_token", apperrors.ErrUnauthorized)
	}
	return s.ValidateIDToken(ctx, rawIDToken)
}

// authService implements the sign-in flows on top of users, tokens and Google.
type authService struct {
	BaseService
	users  portssvc.UserSvcFacade
	tokens portssvc.TokenSvcFacade
	google portssvc.GoogleAuthSvcFacade
}

// NewAuthService creates the sign-in service.
func NewAuthService(users portssvc.UserSvcFacade, tokens portssvc.TokenSvcFacade, google portssvc.GoogleAuthSvcFacade) portssvc.AuthSvcFacade {
	return &authService{users: users, tokens: tokens, google: google}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	info, err := s.google.ValidateIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return s.loginGoogleUser(ctx, info)
}

func (s *authService) LoginWithGoogleCode(ctx context.Context, code string) (*dto.LoginResponse, error) {
	info, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.loginGoogleUser(ctx, info)
}

// loginGoogleUser signs in the existing profile with the Google email.
// Accounts are never provisioned from Google; an admin creates them first.
func (s *authService) loginGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*dto.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Google sign-in for unknown email", slog.String("email", info.Email))
			return nil, fmt.Errorf("%w: no account for %s", apperrors.ErrUnauthorized, info.Email)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	return s.issue(ctx, user)
}

func (s *authService) GoogleLoginURL(state string) string {
	return s.google.LoginURL(state)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	user, err := s.tokens.ValidateRefreshToken(ctx, req.UserID, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.users.ClearRefreshToken(ctx, userID)
}

// issue creates an access token and rotates the stored refresh token.
func (s *authService) issue(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := s.tokens.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		s.LogError(ctx, err, "Failed to persist refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}
