package middleware

import (
	"net/http"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/auth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired gates every panel route behind a valid access token. The
// attendance core never sees auth state; it only runs after this passes.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
