package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service/mock"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

// serviceMocks bundles one gomock double per service interface so tests can
// set expectations on exactly the collaborators a scenario touches.
type serviceMocks struct {
	auth       *mock.MockAuthService
	session    *mock.MockSessionService
	throttle   *mock.MockThrottleService
	rateLimit  *mock.MockRateLimitService
	permission *mock.MockPermissionService
	userAdmin  *mock.MockUserAdminService
	audit      *mock.MockAuditService
}

func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &serviceMocks{
		auth:       mock.NewMockAuthService(ctrl),
		session:    mock.NewMockSessionService(ctrl),
		throttle:   mock.NewMockThrottleService(ctrl),
		rateLimit:  mock.NewMockRateLimitService(ctrl),
		permission: mock.NewMockPermissionService(ctrl),
		userAdmin:  mock.NewMockUserAdminService(ctrl),
		audit:      mock.NewMockAuditService(ctrl),
	}

	services := &service.Services{
		AuthService:       mocks.auth,
		SessionService:    mocks.session,
		ThrottleService:   mocks.throttle,
		RateLimitService:  mocks.rateLimit,
		PermissionService: mocks.permission,
		UserAdminService:  mocks.userAdmin,
		AuditService:      mocks.audit,
	}

	return NewHandler(services, logger.Nop()), mocks
}

// requestWithPrincipal builds a request carrying an already-authenticated
// principal, as the authenticate middleware would have left it.
func requestWithPrincipal(method, target string, user *models.User, session *models.Session) *http.Request {
	r := httptest.NewRequest(method, target, nil)

	ctx := r.Context()
	if user != nil {
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
	}
	if session != nil {
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)
	}

	return r.WithContext(ctx)
}
