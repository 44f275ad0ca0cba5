package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/mock"
	"github.com/MKhiriev/go-asset-guard/models"
)

func newTestUserAdminService(users *mock.MockUserRepository, history *mock.MockLoginHistoryRepository) UserAdminService {
	cfg := config.App{DefaultPassword: "admin"}
	return NewUserAdminService(users, history, cfg, logger.Nop())
}

func TestUserAdminService_ProvisionUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "Alice Smith", user.DisplayName)
			assert.Equal(t, models.RoleTechnician, user.Role)
			assert.True(t, user.Active)
			assert.True(t, user.MustChangePassword)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin")))

			user.ID = 42
			return user, nil
		})

	created, err := service.ProvisionUser(context.Background(), "alice", "Alice Smith", models.RoleTechnician)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestUserAdminService_ProvisionUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	tests := []struct {
		name     string
		username string
		role     models.Role
	}{
		{
			name:     "empty username",
			username: "",
			role:     models.RoleViewer,
		},
		{
			name:     "unknown role",
			username: "bob",
			role:     models.Role("superuser"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := service.ProvisionUser(context.Background(), test.username, "", test.role)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserAdminService_ProvisionUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	repoErr := errors.New("unique constraint violated")
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, repoErr)

	_, err := service.ProvisionUser(context.Background(), "alice", "", models.RoleViewer)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	want := []models.User{
		{ID: 1, Username: "alice", Role: models.RoleAdmin},
		{ID: 2, Username: "bob", Role: models.RoleViewer},
	}
	users.EXPECT().GetAllUsers(gomock.Any()).Return(want, nil)

	got, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserAdminService_SetRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	users.EXPECT().UpdateRole(gomock.Any(), int64(7), models.RoleManager).Return(nil)

	assert.NoError(t, service.SetRole(context.Background(), 7, models.RoleManager))
}

func TestUserAdminService_SetRole_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	err := service.SetRole(context.Background(), 7, models.Role("root"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserAdminService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	users.EXPECT().SetActive(gomock.Any(), int64(7), false).Return(nil)

	assert.NoError(t, service.SetActive(context.Background(), 7, false))
}

func TestUserAdminService_GrantAndRevokePermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	granted := models.PermissionAuditLogs | models.PermissionViewReports
	users.EXPECT().GrantPermission(gomock.Any(), int64(3), granted).Return(nil)
	users.EXPECT().RevokePermission(gomock.Any(), int64(3), models.PermissionAuditLogs).Return(nil)

	assert.NoError(t, service.GrantPermissions(context.Background(), 3, granted))
	assert.NoError(t, service.RevokePermissions(context.Background(), 3, models.PermissionAuditLogs))
}

func TestUserAdminService_GrantAndRevokePermissions_ZeroMask(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	assert.ErrorIs(t, service.GrantPermissions(context.Background(), 3, 0), ErrInvalidDataProvided)
	assert.ErrorIs(t, service.RevokePermissions(context.Background(), 3, 0), ErrInvalidDataProvided)
}

func TestUserAdminService_LoginHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	filter := models.LoginHistoryFilter{UserID: 7, Limit: 10}
	want := []models.LoginRecord{{ID: 1, UserID: 7, Success: true}}
	history.EXPECT().History(gomock.Any(), filter).Return(want, nil)

	got, err := service.LoginHistory(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserAdminService_LoginStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	want := models.LoginStats{TotalLogins: 20, SuccessfulLogins: 18, FailedLogins: 2, UniqueUsers: 5}
	history.EXPECT().Stats(gomock.Any(), since).Return(want, nil)

	got, err := service.LoginStats(context.Background(), since)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserAdminService_LoginStats_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	history := mock.NewMockLoginHistoryRepository(ctrl)
	service := newTestUserAdminService(users, history)

	statsErr := errors.New("db gone")
	history.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(models.LoginStats{}, statsErr)

	_, err := service.LoginStats(context.Background(), time.Now())
	assert.ErrorIs(t, err, statsErr)
}
