package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

type createUserRequest struct {
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Role        models.Role `json:"role"`
}

type setRoleRequest struct {
	Role models.Role `json:"role"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type permissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid create-user payload")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.UserAdminService.ProvisionUser(ctx, req.Username, req.DisplayName, req.Role)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("user provisioning rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserAdminService.ListUsers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing users failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) setRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.UserAdminService.SetRole(ctx, userID, req.Role); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("role update rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: "role updated"}, http.StatusOK)
}

// setActive toggles the account. Deactivation also drops the principal's
// live sessions so that access ends now, not at session expiry.
func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.UserAdminService.SetActive(ctx, userID, req.Active); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("activation update rejected")
		writeError(w, err)
		return
	}

	if !req.Active {
		if username, ok := h.usernameByID(ctx, userID); ok {
			dropped := h.services.SessionService.InvalidateUser(username)
			log.Info().Str("username", username).Int("dropped", dropped).Msg("deactivated user sessions invalidated")
		}
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: "user updated"}, http.StatusOK)
}

func (h *Handler) grantPermissions(w http.ResponseWriter, r *http.Request) {
	h.updatePermissions(w, r, h.services.UserAdminService.GrantPermissions, "permissions granted")
}

func (h *Handler) revokePermissions(w http.ResponseWriter, r *http.Request) {
	h.updatePermissions(w, r, h.services.UserAdminService.RevokePermissions, "permissions revoked")
}

func (h *Handler) updatePermissions(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, userID int64, permissions models.Permission) error, message string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	var req permissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := apply(ctx, userID, models.ParsePermissions(req.Permissions)); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("permission update rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: message}, http.StatusOK)
}

// loginHistory returns login records for one principal, newest first.
// Query parameters: success (true/false), since (RFC 3339), limit.
func (h *Handler) loginHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	filter := models.LoginHistoryFilter{UserID: userID, Limit: 100}

	if raw := r.URL.Query().Get("success"); raw != "" {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		filter.Success = &success
	}
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		filter.Since = since
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		filter.Limit = limit
	}

	records, err := h.services.UserAdminService.LoginHistory(r.Context(), filter)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("login history query failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}

// usernameByID resolves a principal's username through the user listing.
// Used only on the rare deactivation path.
func (h *Handler) usernameByID(ctx context.Context, userID int64) (string, bool) {
	users, err := h.services.UserAdminService.ListUsers(ctx)
	if err != nil {
		return "", false
	}
	for _, user := range users {
		if user.ID == userID {
			return user.Username, true
		}
	}
	return "", false
}
