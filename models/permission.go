// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the domain entities shared by the service, store,
// and transport layers: principals, roles, permissions, sessions, token
// claims, and audit records.
package models

import "strings"

// Permission is a closed bitmask of the capabilities known to the
// application. Using a fixed-width bitmask instead of free-form strings keeps
// the permission space enumerable: every capability a handler can require is
// declared below, and an unknown string coming off the wire simply maps to
// zero bits.
type Permission uint16

const (
	// PermissionRead allows read access to business resources.
	PermissionRead Permission = 1 << iota

	// PermissionWrite allows creating and modifying business resources.
	PermissionWrite

	// PermissionDelete allows removing business resources.
	PermissionDelete

	// PermissionManageUsers allows provisioning, updating, and deactivating
	// principals.
	PermissionManageUsers

	// PermissionSystemAdmin allows system-level administrative operations.
	PermissionSystemAdmin

	// PermissionAuditLogs allows reading the security audit trail.
	PermissionAuditLogs

	// PermissionConfiguration allows changing application configuration.
	PermissionConfiguration

	// PermissionManageTeam allows managing members of the caller's team.
	PermissionManageTeam

	// PermissionViewReports allows access to reporting views.
	PermissionViewReports

	// PermissionMaintenance allows hardware/loan maintenance operations.
	PermissionMaintenance
)

// permissionNames maps each capability bit to its wire name. The wire names
// are the values carried in the JWT "permissions" claim and stored in the
// permission-override column.
var permissionNames = map[Permission]string{
	PermissionRead:          "read",
	PermissionWrite:         "write",
	PermissionDelete:        "delete",
	PermissionManageUsers:   "manage_users",
	PermissionSystemAdmin:   "system_admin",
	PermissionAuditLogs:     "audit_logs",
	PermissionConfiguration: "configuration",
	PermissionManageTeam:    "manage_team",
	PermissionViewReports:   "view_reports",
	PermissionMaintenance:   "maintenance",
}

// allPermissions lists the bits in declaration order so that Strings()
// produces deterministic output.
var allPermissions = []Permission{
	PermissionRead,
	PermissionWrite,
	PermissionDelete,
	PermissionManageUsers,
	PermissionSystemAdmin,
	PermissionAuditLogs,
	PermissionConfiguration,
	PermissionManageTeam,
	PermissionViewReports,
	PermissionMaintenance,
}

// Has reports whether every bit of required is present in p.
func (p Permission) Has(required Permission) bool {
	return p&required == required
}

// Strings returns the wire names of all bits set in p, in declaration order.
func (p Permission) Strings() []string {
	names := make([]string, 0, len(allPermissions))
	for _, perm := range allPermissions {
		if p.Has(perm) {
			names = append(names, permissionNames[perm])
		}
	}
	return names
}

// String returns a comma-separated list of the wire names set in p.
// It implements the fmt.Stringer interface.
func (p Permission) String() string {
	return strings.Join(p.Strings(), ",")
}

// ParsePermission returns the capability bit for a single wire name,
// or zero if the name is unknown.
func ParsePermission(name string) Permission {
	for perm, permName := range permissionNames {
		if permName == name {
			return perm
		}
	}
	return 0
}

// ParsePermissions folds a list of wire names into a bitmask.
// Unknown names are ignored: a token issued by a newer build must not make an
// older build fail outright, it simply grants nothing for the unknown name.
func ParsePermissions(names []string) Permission {
	var p Permission
	for _, name := range names {
		p |= ParsePermission(name)
	}
	return p
}
