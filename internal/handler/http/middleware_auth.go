package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// authenticate enforces bearer-token authentication and session resolution.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken], resolves the live session via
// [service.SessionService.Resolve] (which slides the session's expiration
// forward), and stores the principal and the session in the request context
// under [utils.UserCtxKey] and [utils.SessionCtxKey].
//
// The principal is rebuilt from the verified claims, so no database round
// trip happens on the hot path; revocation is handled through the session
// registry instead.
//
// Every rejection lands in the audit trail: AUTH_FAILED for token problems,
// SESSION_EXPIRED when the token is valid but its session lapsed.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			h.recordDenial(r, models.AuditAuthFailed, models.AuditResultFailure, string(service.ReasonMissingToken))
			writeError(w, service.NewAuthError(service.ReasonMissingToken, ""))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			h.recordDenial(r, models.AuditAuthFailed, models.AuditResultFailure, string(service.ReasonMalformedToken))
			writeError(w, service.NewAuthError(service.ReasonMalformedToken, ""))
			return
		}

		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			var authErr *service.AuthenticationError
			detail := string(service.ReasonMalformedToken)
			if errors.As(err, &authErr) {
				detail = string(authErr.Reason)
			}

			log.Warn().Str("reason", detail).Msg("token rejected")
			h.recordDenial(r, models.AuditAuthFailed, models.AuditResultFailure, detail)
			writeError(w, err)
			return
		}

		session, err := h.services.SessionService.Resolve(ctx, claims)
		if err != nil {
			action := models.AuditAuthFailed
			if errors.Is(err, service.ErrSessionExpired) {
				action = models.AuditSessionExpired
			}

			log.Warn().Err(err).Str("username", claims.Username).Msg("session rejected")
			h.recordDenial(r, action, models.AuditResultFailure, claims.Username)
			writeError(w, err)
			return
		}

		user := &models.User{
			Username:  claims.Username,
			Role:      claims.Role,
			Overrides: claims.PermissionSet() &^ claims.Role.BasePermissions(),
			Active:    true,
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.SessionCtxKey, &session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
