package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// authorize checks the authenticated principal against the route
// requirement. Role-level denials are audited as ACCESS_DENIED_ROLE,
// permission denials as ACCESS_DENIED_PERMISSION. Must run after
// authenticate.
func (h *Handler) authorize(requirement service.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				h.recordDenial(r, models.AuditAuthFailed, models.AuditResultFailure, string(service.ReasonMissingToken))
				writeError(w, service.NewAuthError(service.ReasonMissingToken, ""))
				return
			}

			if err := h.services.PermissionService.Authorize(user, requirement); err != nil {
				action := models.AuditDeniedPerm
				var authzErr *service.AuthorizationError
				if errors.As(err, &authzErr) && authzErr.MinLevel > 0 {
					action = models.AuditDeniedRole
				}

				log.Warn().
					Str("username", user.Username).
					Str("role", string(user.Role)).
					Msg("authorization denied")
				h.recordDenial(r, action, models.AuditResultDenied, err.Error())
				writeError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
