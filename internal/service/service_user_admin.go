package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/store"
	"github.com/MKhiriev/go-asset-guard/models"
)

// userAdminService is the concrete implementation of UserAdminService.
type userAdminService struct {
	userRepository         store.UserRepository
	loginHistoryRepository store.LoginHistoryRepository

	// defaultPassword is assigned to newly provisioned accounts, which must
	// change it on first login.
	defaultPassword string

	logger *logger.Logger
}

// NewUserAdminService constructs a UserAdminService.
func NewUserAdminService(userRepository store.UserRepository, loginHistoryRepository store.LoginHistoryRepository, cfg config.App, logger *logger.Logger) UserAdminService {
	return &userAdminService{
		userRepository:         userRepository,
		loginHistoryRepository: loginHistoryRepository,
		defaultPassword:        cfg.DefaultPassword,
		logger:                 logger,
	}
}

// ProvisionUser creates an account with the default password and the
// must-change flag set.
func (s *userAdminService) ProvisionUser(ctx context.Context, username, displayName string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || !role.Valid() {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username:           username,
		DisplayName:        displayName,
		PasswordHash:       string(hash),
		Role:               role,
		Active:             true,
		MustChangePassword: true,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user provisioning failed")
		return models.User{}, fmt.Errorf("user provisioning failed: %w", err)
	}

	log.Info().Str("username", username).Str("role", string(role)).Msg("user provisioned")
	return user, nil
}

// ListUsers returns every account ordered by username.
func (s *userAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// SetRole changes the account's role.
func (s *userAdminService) SetRole(ctx context.Context, userID int64, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpdateRole(ctx, userID, role); err != nil {
		return fmt.Errorf("role update failed: %w", err)
	}

	return nil
}

// SetActive enables or disables the account.
func (s *userAdminService) SetActive(ctx context.Context, userID int64, active bool) error {
	if err := s.userRepository.SetActive(ctx, userID, active); err != nil {
		return fmt.Errorf("activation update failed: %w", err)
	}

	return nil
}

// GrantPermissions adds permission overrides on top of the account's role.
func (s *userAdminService) GrantPermissions(ctx context.Context, userID int64, permissions models.Permission) error {
	if permissions == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.GrantPermission(ctx, userID, permissions); err != nil {
		return fmt.Errorf("permission grant failed: %w", err)
	}

	return nil
}

// RevokePermissions removes permission overrides. Role base permissions are
// untouched.
func (s *userAdminService) RevokePermissions(ctx context.Context, userID int64, permissions models.Permission) error {
	if permissions == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.RevokePermission(ctx, userID, permissions); err != nil {
		return fmt.Errorf("permission revoke failed: %w", err)
	}

	return nil
}

// LoginHistory returns login records matching the filter, newest first.
func (s *userAdminService) LoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginRecord, error) {
	records, err := s.loginHistoryRepository.History(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("login history query failed: %w", err)
	}

	return records, nil
}

// LoginStats aggregates the login history since the given time.
func (s *userAdminService) LoginStats(ctx context.Context, since time.Time) (models.LoginStats, error) {
	stats, err := s.loginHistoryRepository.Stats(ctx, since)
	if err != nil {
		return models.LoginStats{}, fmt.Errorf("login stats query failed: %w", err)
	}

	return stats, nil
}
