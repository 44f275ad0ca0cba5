package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/store"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrSessionNotFound:     http.StatusUnauthorized,
	service.ErrSessionExpired:      http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrNothingUpdated:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// safeMessageMap holds the caller-facing text per sentinel. Everything not
// listed here degrades to the plain status text so that store/service
// internals never leak into a response body.
var safeMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid request data",
	service.ErrSessionNotFound:     "authentication required",
	service.ErrSessionExpired:      "session expired",

	store.ErrUsernameAlreadyExists: "username already exists",
	store.ErrUserNotFound:          "user not found",
	store.ErrNothingUpdated:        "user not found",
}

// writeError maps err to an HTTP status and writes the uniform denial
// envelope. Typed guard errors take precedence over the sentinel map.
func writeError(w http.ResponseWriter, err error) {
	var (
		authErr      *service.AuthenticationError
		authzErr     *service.AuthorizationError
		rateLimitErr *service.RateLimitError
		csrfErr      *service.CSRFError
	)

	switch {
	case errors.As(err, &rateLimitErr):
		retryAfter := int(rateLimitErr.RetryAfter.Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		utils.WriteJSON(w, models.APIResponse{
			Error:      "too many requests",
			RetryAfter: retryAfter,
		}, http.StatusTooManyRequests)
		return

	case errors.As(err, &authErr):
		// lockouts answer 401 like every other authentication failure
		utils.WriteJSON(w, models.APIResponse{Error: "authentication failed"}, http.StatusUnauthorized)
		return

	case errors.As(err, &authzErr):
		utils.WriteJSON(w, models.APIResponse{Error: "access denied"}, http.StatusForbidden)
		return

	case errors.As(err, &csrfErr):
		utils.WriteJSON(w, models.APIResponse{Error: "invalid csrf token"}, http.StatusForbidden)
		return
	}

	status := http.StatusInternalServerError
	message := ""
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			status = mapped
			message = safeMessageMap[target]
			break
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.APIResponse{Error: message}, status)
}
