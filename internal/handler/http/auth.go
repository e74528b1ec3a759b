package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/auth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http/response"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/jwt"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/oauth"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.Service
	google      oauth.GoogleService
	frontendURL string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.Service, google oauth.GoogleService, frontendURL string) AuthHandler {
	return &authHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
		google:      google,
		frontendURL: frontendURL,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresIn))
	response.Success(w, result)
}

// RefreshToken implements AuthHandler.
func (h *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFrom(r)
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresIn))
	response.Success(w, result)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFrom(r)

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	cookie := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, cookie)

	response.SuccessWithMessage(w, "Logged out", nil)
}

// LoginWithGoogle implements AuthHandler.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		response.HandleError(w, auth.ErrOAuthNotConfigured)
		return
	}

	state := h.google.GenerateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/v1/auth",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.google.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		response.HandleError(w, auth.ErrOAuthNotConfigured)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.Unauthorized(w, "OAuth state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	result, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		slog.Error("google login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresIn))
	http.Redirect(w, r, h.frontendURL+"?access_token="+result.AccessToken, http.StatusTemporaryRedirect)
}

// SSEToken implements AuthHandler.
func (h *authHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth.SSETokenResponse{Token: token, ExpiresIn: expiresIn})
}

func (h *authHandlerImpl) refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body auth.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}
