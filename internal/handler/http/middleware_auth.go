package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/service"
	"github.com/unesleaf/unesleaf-server/internal/utils"
)

// auth verifies the "Authorization: Bearer <token>" header on protected
// routes and stores the decoded claims in the request context. The 401
// responses distinguish a missing header, an expired token, and any other
// verification failure.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader == "" {
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authorizationHeader)
		if err != nil {
			// a header that is not "Bearer <token>" reads as no token at all
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			utils.WriteError(w, "token expired", http.StatusUnauthorized)
			return
		case err != nil:
			log.Debug().Err(err).Msg("token verification failed")
			utils.WriteError(w, "token invalid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClaimsCtxKey, token.Claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
