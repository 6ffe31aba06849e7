package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// TokenSvcFacade issues access and refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken returns the user owning refreshToken or apperrors.ErrUnauthorized.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleAuthSvcFacade verifies Google identities.
type GoogleAuthSvcFacade interface {
	// ValidateIDToken verifies a Google ID token issued for the configured client.
	ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)

	// LoginURL returns the Google consent URL carrying state.
	LoginURL(state string) string

	// ExchangeCode trades an authorization code for the signed-in user's identity.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}

// AuthSvcFacade implements the sign-in flows exposed over HTTP.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error)
	LoginWithGoogleCode(ctx context.Context, code string) (*dto.LoginResponse, error)
	GoogleLoginURL(state string) string
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID string) error
}
