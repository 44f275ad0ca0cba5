package service

import (
	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/store"
)

type Services struct {
	AuthService       AuthService
	SessionService    SessionService
	ThrottleService   ThrottleService
	RateLimitService  RateLimitService
	PermissionService PermissionService
	UserAdminService  UserAdminService
	AuditService      AuditService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.LoginHistoryRepository, cfg.App, logger),
		SessionService:    NewSessionService(cfg.App, logger),
		ThrottleService:   NewThrottleService(cfg.App, logger),
		RateLimitService:  NewRateLimitService(logger),
		PermissionService: NewPermissionService(logger),
		UserAdminService:  NewUserAdminService(storages.UserRepository, storages.LoginHistoryRepository, cfg.App, logger),
		AuditService:      NewAuditService(cfg.App.AuditCapacity, logger),
	}
}
