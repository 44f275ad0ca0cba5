package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// auditLogs returns audit entries newest first.
// Query parameters: user, action, since (RFC 3339).
func (h *Handler) auditLogs(w http.ResponseWriter, r *http.Request) {
	filter := models.AuditFilter{
		User:   r.URL.Query().Get("user"),
		Action: models.AuditAction(r.URL.Query().Get("action")),
	}

	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		filter.Since = since
	}

	utils.WriteJSON(w, h.services.AuditService.Query(filter), http.StatusOK)
}

// loginStats aggregates the persistent login history.
// Query parameter: since (RFC 3339); absent means all time.
func (h *Handler) loginStats(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		since = parsed
	}

	stats, err := h.services.UserAdminService.LoginStats(r.Context(), since)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("login stats query failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
