package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-asset-guard/models"
)

// Table names come from the model layer so the repositories and the models
// can never disagree about them.
var (
	usersTable        = models.User{}.TableName()
	loginHistoryTable = models.LoginRecord{}.TableName()
	permissionsTable  = "app_permissions"
)

var userColumns = []string{
	"id",
	"username",
	"display_name",
	"password_hash",
	"role",
	"active",
	"must_change_password",
	"last_login",
	"created_at",
	"updated_at",
}

func insertUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(usersTable).
		Columns("username", "display_name", "password_hash", "role", "active", "must_change_password").
		Values(user.Username, user.DisplayName, user.PasswordHash, user.Role, user.Active, user.MustChangePassword).
		Suffix("RETURNING " + joinColumns(userColumns))
}

func selectUserByUsernameQuery(b sq.StatementBuilderType, username string) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username})
}

func selectAllUsersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("username")
}

func updatePasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string, mustChange bool) sq.UpdateBuilder {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("must_change_password", mustChange).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": userID})
}

func updateRoleQuery(b sq.StatementBuilderType, userID int64, role models.Role) sq.UpdateBuilder {
	return b.Update(usersTable).
		Set("role", role).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": userID})
}

func setActiveQuery(b sq.StatementBuilderType, userID int64, active bool) sq.UpdateBuilder {
	return b.Update(usersTable).
		Set("active", active).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": userID})
}

func updateLastLoginQuery(b sq.StatementBuilderType, userID int64, at any) sq.UpdateBuilder {
	return b.Update(usersTable).
		Set("last_login", at).
		Where(sq.Eq{"id": userID})
}

// selectBrokenCredentialsQuery matches accounts whose stored hash is missing
// or is not a bcrypt hash, which makes every login attempt fail with an
// internal error instead of a clean rejection.
func selectBrokenCredentialsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"password_hash": ""},
			sq.NotLike{"password_hash": "$2%"},
		})
}

func selectPermissionsQuery(b sq.StatementBuilderType, userID int64) sq.SelectBuilder {
	return b.Select("permission").
		From(permissionsTable).
		Where(sq.Eq{"user_id": userID})
}

func insertPermissionQuery(b sq.StatementBuilderType, userID int64, permission string) sq.InsertBuilder {
	return b.Insert(permissionsTable).
		Columns("user_id", "permission").
		Values(userID, permission)
}

func deletePermissionQuery(b sq.StatementBuilderType, userID int64, permission string) sq.DeleteBuilder {
	return b.Delete(permissionsTable).
		Where(sq.Eq{"user_id": userID, "permission": permission})
}

var loginHistoryColumns = []string{
	"id",
	"user_id",
	"source_ip",
	"user_agent",
	"success",
	"failure_reason",
	"logged_at",
}

func insertLoginRecordQuery(b sq.StatementBuilderType, record models.LoginRecord) sq.InsertBuilder {
	// failed attempts against unknown usernames carry no principal id
	var userID any
	if record.UserID != 0 {
		userID = record.UserID
	}

	return b.Insert(loginHistoryTable).
		Columns("user_id", "source_ip", "user_agent", "success", "failure_reason", "logged_at").
		Values(userID, record.SourceIP, record.UserAgent, record.Success, record.FailureReason, record.LoggedAt)
}

// selectLoginHistoryQuery builds a filtered history query. Zero-valued filter
// fields add no WHERE clause.
func selectLoginHistoryQuery(b sq.StatementBuilderType, filter models.LoginHistoryFilter) sq.SelectBuilder {
	query := b.Select(loginHistoryColumns...).
		From(loginHistoryTable).
		OrderBy("logged_at DESC")

	if filter.UserID != 0 {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Success != nil {
		query = query.Where(sq.Eq{"success": *filter.Success})
	}
	if !filter.Since.IsZero() {
		query = query.Where(sq.GtOrEq{"logged_at": filter.Since})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

func selectLoginStatsQuery(b sq.StatementBuilderType, since any) sq.SelectBuilder {
	return b.Select(
		"COUNT(*) AS total_logins",
		"SUM(CASE WHEN success THEN 1 ELSE 0 END) AS successful_logins",
		"SUM(CASE WHEN success THEN 0 ELSE 1 END) AS failed_logins",
		"COUNT(DISTINCT user_id) AS unique_users",
	).
		From(loginHistoryTable).
		Where(sq.GtOrEq{"logged_at": since})
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
