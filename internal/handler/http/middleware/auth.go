package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/auth"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token. It also
// checks the in-memory revocation list so a logged-out token dies before
// its natural expiry.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
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

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
