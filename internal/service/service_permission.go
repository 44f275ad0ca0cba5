// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
)

// Requirement describes what a route demands from the caller: a minimum role
// level, a set of permissions, or both. The zero value allows any
// authenticated user.
type Requirement struct {
	// MinLevel is the lowest acceptable role level (see models.Role.Level).
	// Zero disables the level check.
	MinLevel int

	// Required is the set of permissions the caller must hold. All bits
	// must be present. Zero disables the permission check.
	Required models.Permission
}

// permissionService is the concrete implementation of PermissionService.
type permissionService struct {
	logger *logger.Logger
}

// NewPermissionService constructs a PermissionService.
//
// The returned service is stateless and safe for concurrent use.
func NewPermissionService(logger *logger.Logger) PermissionService {
	return &permissionService{logger: logger}
}

// Authorize checks user against requirement.
//
// Top-level roles bypass both checks: an administrator is never denied.
// Otherwise the role level is compared first, then the effective permission
// set (role base plus per-user overrides) must contain every required bit.
func (p *permissionService) Authorize(user *models.User, requirement Requirement) error {
	if user == nil {
		return NewAuthError(ReasonUserNotFound, "")
	}

	if user.Role.IsTopLevel() {
		return nil
	}

	if requirement.MinLevel > 0 && user.Role.Level() < requirement.MinLevel {
		p.logger.Warn().
			Str("username", user.Username).
			Str("role", string(user.Role)).
			Int("required_level", requirement.MinLevel).
			Msg("role level below requirement")

		return &AuthorizationError{
			Username: user.Username,
			Role:     user.Role,
			MinLevel: requirement.MinLevel,
		}
	}

	if requirement.Required != 0 {
		effective := user.EffectivePermissions()
		if !effective.Has(requirement.Required) {
			missing := requirement.Required &^ effective
			p.logger.Warn().
				Str("username", user.Username).
				Str("role", string(user.Role)).
				Strs("missing", missing.Strings()).
				Msg("missing required permissions")

			return &AuthorizationError{
				Username: user.Username,
				Role:     user.Role,
				Missing:  missing,
			}
		}
	}

	return nil
}
