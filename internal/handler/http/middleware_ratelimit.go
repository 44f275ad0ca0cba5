package http

import (
	"net/http"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// rateLimit consumes one request from the (source address, role) quota.
// Rejected requests are audited as RATE_LIMIT_EXCEEDED and answered with 429
// plus a Retry-After hint. Must run after authenticate.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			h.recordDenial(r, models.AuditAuthFailed, models.AuditResultFailure, string(service.ReasonMissingToken))
			writeError(w, service.NewAuthError(service.ReasonMissingToken, ""))
			return
		}

		ip := sourceIP(r)
		if err := h.services.RateLimitService.Allow(ip, user.Role); err != nil {
			log.Warn().
				Str("source_ip", ip).
				Str("role", string(user.Role)).
				Msg("rate limit exceeded")
			h.recordDenial(r, models.AuditRateLimited, models.AuditResultDenied, err.Error())
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
