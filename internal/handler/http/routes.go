package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/models"
)

// Init wires the router. Guarded routes run the fixed middleware order
// authenticate, authorize, rateLimit, checkCSRF, audited(handler); the
// login route is the only pre-authentication endpoint and is protected by
// the per-IP token bucket inside the handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		// any authenticated principal
		r.Group(func(r chi.Router) {
			r.Use(h.authorize(service.Requirement{MinLevel: models.RoleViewer.Level()}))
			r.Use(h.rateLimit)
			r.Use(h.checkCSRF)

			r.With(h.audited(models.AuditLogout)).Post("/api/auth/logout", h.logout)
			r.With(h.audited(auditPasswordChange)).Post("/api/auth/change-password", h.changePassword)
			r.With(h.audited(models.AuditAccessGranted)).Get("/api/auth/roles", h.roleCatalog)
		})

		// account administration
		r.Group(func(r chi.Router) {
			r.Use(h.authorize(service.Requirement{
				MinLevel: models.RoleAdmin.Level(),
				Required: models.PermissionManageUsers,
			}))
			r.Use(h.rateLimit)
			r.Use(h.checkCSRF)
			r.Use(h.audited(auditUserAdmin))

			r.Post("/api/users", h.createUser)
			r.Get("/api/users", h.listUsers)
			r.Patch("/api/users/{userID}/role", h.setRole)
			r.Patch("/api/users/{userID}/active", h.setActive)
			r.Post("/api/users/{userID}/permissions", h.grantPermissions)
			r.Delete("/api/users/{userID}/permissions", h.revokePermissions)
			r.Get("/api/users/{userID}/logins", h.loginHistory)
		})

		// security reporting
		r.Group(func(r chi.Router) {
			r.Use(h.authorize(service.Requirement{
				MinLevel: models.RoleAdmin.Level(),
				Required: models.PermissionAuditLogs,
			}))
			r.Use(h.rateLimit)
			r.Use(h.audited(auditTrailQuery))

			r.Get("/api/audit/logs", h.auditLogs)
			r.Get("/api/audit/stats", h.loginStats)
		})
	})

	return router
}
