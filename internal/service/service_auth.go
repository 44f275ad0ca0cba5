package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/store"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
	"github.com/golang-jwt/jwt/v5"
)

// bcryptCost is the work factor applied when hashing passwords.
const bcryptCost = 10

// authService is the concrete implementation of AuthService.
// It handles credential verification, password changes, startup credential
// repair, and JWT token lifecycle using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to look up and update users.
	userRepository store.UserRepository

	// loginHistoryRepository persists one row per login attempt.
	loginHistoryRepository store.LoginHistoryRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// defaultPassword is assigned to repaired accounts, which are then
	// forced to change it on the next login.
	defaultPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, loginHistoryRepository store.LoginHistoryRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		loginHistoryRepository: loginHistoryRepository,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		defaultPassword:        cfg.DefaultPassword,
		logger:                 logger,
	}
}

// VerifyCredentials authenticates a username/password pair.
//
// The bcrypt comparison runs even when only the lookup result decides the
// outcome, so a missing account costs roughly the same time as a wrong
// password.
//
// Returns the account on success or an *AuthenticationError carrying one of:
//   - ReasonUserNotFound if no account matches the username.
//   - ReasonUserInactive if the account has been deactivated.
//   - ReasonWrongPassword if the password does not match.
func (a *authService) VerifyCredentials(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// burn a comparison so the timing matches the wrong-password path
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000uGZwKK0Yh4Cf7MDRWSJjDLTUMFoFSVm"), []byte(password))
			return models.User{}, NewAuthError(ReasonUserNotFound, username)
		}

		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, NewAuthError(ReasonWrongPassword, username)
	}

	if !user.Active {
		log.Warn().Str("username", username).Msg("inactive account rejected")
		return models.User{}, NewAuthError(ReasonUserInactive, username)
	}

	now := time.Now()
	if err := a.userRepository.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// the login itself already succeeded
		log.Err(err).Str("username", username).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the raw token string and its claims, or a wrapped error if JWT
// generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, *models.Claims, error) {
	tokenString, claims, err := utils.GenerateJWTToken(&user, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", nil, fmt.Errorf("token creation failed: %w", err)
	}

	return tokenString, claims, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim, and translates the jwt/v5 sentinel errors into
// *AuthenticationError reasons so callers never inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ReasonMissingToken, "")
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, NewAuthError(ReasonExpiredToken, "")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, NewAuthError(ReasonInvalidSignature, "")
		default:
			return nil, NewAuthError(ReasonMalformedToken, "")
		}
	}

	return claims, nil
}

// ChangePassword verifies oldPassword and replaces it with newPassword,
// clearing the must-change flag on success.
func (a *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" || newPassword == oldPassword {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return NewAuthError(ReasonUserNotFound, username)
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		log.Warn().Str("username", username).Msg("password change rejected: wrong current password")
		return NewAuthError(ReasonWrongPassword, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.ID, string(hash), false); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Str("username", username).Msg("password changed")
	return nil
}

// RepairCredentials scans for accounts whose stored hash is unusable (empty
// or not bcrypt), resets each to the default password, and flags the account
// to change it on the next login. Intended to run once at startup.
func (a *authService) RepairCredentials(ctx context.Context) ([]models.User, error) {
	broken, err := a.userRepository.FindBrokenCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("broken credential scan failed: %w", err)
	}
	if len(broken) == 0 {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.defaultPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	repaired := make([]models.User, 0, len(broken))
	for _, user := range broken {
		if err := a.userRepository.UpdatePassword(ctx, user.ID, string(hash), true); err != nil {
			a.logger.Err(err).Str("username", user.Username).Msg("credential repair failed")
			continue
		}

		a.logger.Warn().Str("username", user.Username).Msg("credentials repaired, password reset required")
		repaired = append(repaired, user)
	}

	return repaired, nil
}

// RecordLogin appends one attempt to the persistent login history.
func (a *authService) RecordLogin(ctx context.Context, record models.LoginRecord) error {
	if err := a.loginHistoryRepository.RecordLogin(ctx, record); err != nil {
		return fmt.Errorf("recording login attempt failed: %w", err)
	}

	return nil
}
