package http

import (
	"net/http"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

const csrfTokenHeader = "X-CSRF-Token"

// checkCSRF requires state-changing requests to echo the session's CSRF
// token in the X-CSRF-Token header. Safe methods pass through untouched.
// Failures are audited as CSRF_ATTACK. Must run after authenticate.
func (h *Handler) checkCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			h.recordDenial(r, models.AuditAuthFailed, models.AuditResultFailure, string(service.ReasonMissingToken))
			writeError(w, service.NewAuthError(service.ReasonMissingToken, ""))
			return
		}

		token := r.Header.Get(csrfTokenHeader)
		if err := h.services.SessionService.ValidateCSRF(session.ID, token); err != nil {
			log.Warn().Str("username", session.Username).Msg("csrf validation failed")
			h.recordDenial(r, models.AuditCSRFAttack, models.AuditResultDenied, session.Username)
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
