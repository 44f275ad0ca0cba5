package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

func testClaims(username string, role models.Role) *models.Claims {
	user := models.User{Username: username, Role: role}
	claims := models.NewClaims(user, "asset-guard", time.Now(), time.Hour)
	return &claims
}

func TestAuthenticate_ValidToken(t *testing.T) {
	h, mocks := newTestHandler(t)
	claims := testClaims("alice", models.RoleManager)

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(claims, nil)
	mocks.session.EXPECT().
		Resolve(gomock.Any(), claims).
		Return(models.Session{ID: claims.SessionKey(), Username: "alice", CSRFToken: "csrf-secret"}, nil)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, models.RoleManager, user.Role)

		session, ok := utils.GetSessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "csrf-secret", session.CSRFToken)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/auth/roles", nil)
	r.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	h.authenticate(next).ServeHTTP(w, r)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_PermissionOverridesFromClaims(t *testing.T) {
	h, mocks := newTestHandler(t)

	user := models.User{
		Username:  "bob",
		Role:      models.RoleViewer,
		Overrides: models.PermissionAuditLogs,
	}
	claims := models.NewClaims(user, "asset-guard", time.Now(), time.Hour)

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(&claims, nil)
	mocks.session.EXPECT().Resolve(gomock.Any(), &claims).Return(models.Session{ID: claims.SessionKey()}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, models.PermissionAuditLogs, got.Overrides)
		assert.True(t, got.EffectivePermissions().Has(models.PermissionRead|models.PermissionAuditLogs))
	})

	r := httptest.NewRequest(http.MethodGet, "/api/audit/logs", nil)
	r.Header.Set("Authorization", "Bearer good-token")

	h.authenticate(next).ServeHTTP(httptest.NewRecorder(), r)
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setup      func(mocks *serviceMocks)
		wantAction models.AuditAction
	}{
		{
			name:       "missing header",
			authHeader: "",
			setup:      func(mocks *serviceMocks) {},
			wantAction: models.AuditAuthFailed,
		},
		{
			name:       "malformed header",
			authHeader: "Basic dXNlcjpwYXNz",
			setup:      func(mocks *serviceMocks) {},
			wantAction: models.AuditAuthFailed,
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale-token",
			setup: func(mocks *serviceMocks) {
				mocks.auth.EXPECT().
					ParseToken(gomock.Any(), "stale-token").
					Return(nil, service.NewAuthError(service.ReasonExpiredToken, ""))
			},
			wantAction: models.AuditAuthFailed,
		},
		{
			name:       "invalid signature",
			authHeader: "Bearer forged-token",
			setup: func(mocks *serviceMocks) {
				mocks.auth.EXPECT().
					ParseToken(gomock.Any(), "forged-token").
					Return(nil, service.NewAuthError(service.ReasonInvalidSignature, ""))
			},
			wantAction: models.AuditAuthFailed,
		},
		{
			name:       "no session for valid token",
			authHeader: "Bearer orphan-token",
			setup: func(mocks *serviceMocks) {
				claims := testClaims("alice", models.RoleViewer)
				mocks.auth.EXPECT().ParseToken(gomock.Any(), "orphan-token").Return(claims, nil)
				mocks.session.EXPECT().Resolve(gomock.Any(), claims).Return(models.Session{}, service.ErrSessionNotFound)
			},
			wantAction: models.AuditAuthFailed,
		},
		{
			name:       "expired session",
			authHeader: "Bearer lapsed-token",
			setup: func(mocks *serviceMocks) {
				claims := testClaims("alice", models.RoleViewer)
				mocks.auth.EXPECT().ParseToken(gomock.Any(), "lapsed-token").Return(claims, nil)
				mocks.session.EXPECT().Resolve(gomock.Any(), claims).Return(models.Session{}, service.ErrSessionExpired)
			},
			wantAction: models.AuditSessionExpired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			test.setup(mocks)

			mocks.audit.EXPECT().
				Record(gomock.Any()).
				Do(func(entry models.AuditEntry) {
					assert.Equal(t, test.wantAction, entry.Action)
				})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})

			r := httptest.NewRequest(http.MethodGet, "/api/auth/roles", nil)
			if test.authHeader != "" {
				r.Header.Set("Authorization", test.authHeader)
			}
			w := httptest.NewRecorder()

			h.authenticate(next).ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
