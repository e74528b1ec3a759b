package auth

import (
	"context"
)

// Service defines the authentication gate in front of the panel. The core
// consumes it only as a precondition; attendance logic never inspects it.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle exchanges an OAuth2 callback code for panel tokens,
	// creating the user on first login.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
}
