package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/service"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// requireAdmin is an HTTP middleware that enforces admin-only access.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and checks the role
// claim. On success the admin's ID is stored in the request context under
// [utils.AdminIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with:
//   - HTTP 401 when the header is absent, malformed, or the token is
//     expired or invalid.
//   - HTTP 403 when the token is valid but does not carry the admin role.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: ErrEmptyAuthorizationHeader.Error()}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrTokenIsExpiredOrInvalid.Error()}, http.StatusUnauthorized)
			return
		}

		if !token.IsAdmin() {
			log.Warn().Int64("id", token.SubjectID).Str("role", token.Role).Msg("non-admin token on admin route")
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrNotAdminToken.Error()}, http.StatusForbidden)
			return
		}

		// Store the authenticated admin's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AdminIDCtxKey, token.SubjectID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
