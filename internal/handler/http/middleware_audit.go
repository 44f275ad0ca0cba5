package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// Business action names recorded by the audit wrapper, next to the fixed
// security actions declared in models.
const (
	auditPasswordChange models.AuditAction = "PASSWORD_CHANGE"
	auditUserAdmin      models.AuditAction = "USER_ADMIN"
	auditTrailQuery     models.AuditAction = "AUDIT_QUERY"
)

// audited wraps a handler so that exactly one audit entry is recorded per
// request: the given action with SUCCESS or FAILURE depending on the
// response status, stamped with the handler latency.
func (h *Handler) audited(action models.AuditAction) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(lw, r)

			result := models.AuditResultSuccess
			if lw.status >= http.StatusBadRequest {
				result = models.AuditResultFailure
			}

			entry := h.auditEntry(r, action, result)
			entry.DurationMS = time.Since(start).Milliseconds()
			h.services.AuditService.Record(entry)
		})
	}
}

// recordDenial writes one audit entry for a request rejected inside the
// middleware chain, before any handler ran.
func (h *Handler) recordDenial(r *http.Request, action models.AuditAction, result, detail string) {
	entry := h.auditEntry(r, action, result)
	entry.Detail = detail
	h.services.AuditService.Record(entry)
}

// auditEntry snapshots the request identity. Identity fields stay empty for
// pre-authentication denials; the audit service fills the anonymous
// defaults.
func (h *Handler) auditEntry(r *http.Request, action models.AuditAction, result string) models.AuditEntry {
	entry := models.AuditEntry{
		Action:   action,
		SourceIP: sourceIP(r),
		Resource: r.URL.Path,
		Method:   r.Method,
		Result:   result,
	}

	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		entry.User = user.Username
		entry.Role = string(user.Role)
	}

	return entry
}
