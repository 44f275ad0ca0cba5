package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := insertUserQuery(r.db.Builder(), user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := selectUserByUsernameQuery(r.db.Builder(), username).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// attach per-user permission overrides
	overrides, err := r.GetPermissionOverrides(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	user.Overrides = overrides

	return user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := selectAllUsersQuery(r.db.Builder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string, mustChange bool) error {
	return r.exec(ctx, "*userRepository.UpdatePassword",
		updatePasswordQuery(r.db.Builder(), userID, passwordHash, mustChange))
}

func (r *userRepository) UpdateRole(ctx context.Context, userID int64, role models.Role) error {
	return r.exec(ctx, "*userRepository.UpdateRole",
		updateRoleQuery(r.db.Builder(), userID, role))
}

func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	return r.exec(ctx, "*userRepository.SetActive",
		setActiveQuery(r.db.Builder(), userID, active))
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return r.exec(ctx, "*userRepository.UpdateLastLogin",
		updateLastLoginQuery(r.db.Builder(), userID, at))
}

func (r *userRepository) GetPermissionOverrides(ctx context.Context, userID int64) (models.Permission, error) {
	query, args, err := selectPermissionsQuery(r.db.Builder(), userID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.GetPermissionOverrides").Msg("error querying permissions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// unknown permission names in the table are skipped
	return models.ParsePermissions(names), nil
}

func (r *userRepository) GrantPermission(ctx context.Context, userID int64, permission models.Permission) error {
	for _, name := range permission.Strings() {
		query, args, err := insertPermissionQuery(r.db.Builder(), userID, name).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := r.db.execRetry(ctx, query, args...); err != nil {
			// a duplicate grant is not an error
			if postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err) {
				continue
			}

			r.logger.Err(err).Str("func", "*userRepository.GrantPermission").Msg("error granting permission")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *userRepository) RevokePermission(ctx context.Context, userID int64, permission models.Permission) error {
	for _, name := range permission.Strings() {
		query, args, err := deletePermissionQuery(r.db.Builder(), userID, name).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := r.db.execRetry(ctx, query, args...); err != nil {
			r.logger.Err(err).Str("func", "*userRepository.RevokePermission").Msg("error revoking permission")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *userRepository) FindBrokenCredentials(ctx context.Context) ([]models.User, error) {
	query, args, err := selectBrokenCredentialsQuery(r.db.Builder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindBrokenCredentials").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// exec builds and executes a DML statement and maps the zero-rows case to
// [ErrNothingUpdated].
func (r *userRepository) exec(ctx context.Context, caller string, builder interface {
	ToSql() (string, []any, error)
}) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execRetry(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", caller).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNothingUpdated
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *userRepository) scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Role,
		&user.Active,
		&user.MustChangePassword,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}
