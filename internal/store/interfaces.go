package store

//go:generate mockgen -destination=../mock/mock_store.go -package=mock github.com/MKhiriev/go-asset-guard/internal/store UserRepository,LoginHistoryRepository

import (
	"context"
	"time"

	"github.com/MKhiriev/go-asset-guard/models"
)

// UserRepository provides access to user accounts and their per-user
// permission overrides.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string, mustChange bool) error
	UpdateRole(ctx context.Context, userID int64, role models.Role) error
	SetActive(ctx context.Context, userID int64, active bool) error
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	GetPermissionOverrides(ctx context.Context, userID int64) (models.Permission, error)
	GrantPermission(ctx context.Context, userID int64, permission models.Permission) error
	RevokePermission(ctx context.Context, userID int64, permission models.Permission) error

	FindBrokenCredentials(ctx context.Context) ([]models.User, error)
}

// LoginHistoryRepository records and queries login attempts.
type LoginHistoryRepository interface {
	RecordLogin(ctx context.Context, record models.LoginRecord) error
	History(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginRecord, error)
	Stats(ctx context.Context, since time.Time) (models.LoginStats, error)
}
