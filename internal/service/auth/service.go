package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/auth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/user"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/jwt"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	users  user.Repository
	tokens jwt.Service
	google oauth.GoogleService // nil when Google login is not configured
}

func NewAuthService(users user.Repository, tokens jwt.Service, google oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		users:  users,
		tokens: tokens,
		google: google,
	}
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if !userData.HasPassword() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.Service.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.tokens.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the presented refresh token is spent either way.
	a.tokens.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.Service.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.tokens.RevokeToken(refreshToken)
	return nil
}

// LoginWithGoogle implements auth.Service.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrOAuthNotConfigured
	}

	oauthToken, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, oauthToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.users.GetByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}
		provider := "google"
		userData, err = a.users.Create(ctx, user.User{
			Email:         info.Email,
			OAuthProvider: &provider,
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user from google login: %w", err)
		}
	}

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.tokens.GenerateAccessToken(userData.ID, userData.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.tokens.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return resp, nil
}
