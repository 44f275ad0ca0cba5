package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/utils"
	"github.com/MKhiriev/go-asset-guard/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// login is the only pre-authentication endpoint. The per-IP token bucket and
// the per-source lockout are consulted before credentials are verified, so a
// brute-force source is turned away without touching the store. Every
// attempt, allowed or not, lands in the persistent login history.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	ip := sourceIP(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid login payload")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.RateLimitService.AllowIP(ip); err != nil {
		log.Warn().Str("ip", ip).Msg("login rate limit exceeded")
		h.recordDenial(r, models.AuditRateLimited, models.AuditResultDenied, ip)
		writeError(w, err)
		return
	}

	if err := h.services.ThrottleService.Check(ip); err != nil {
		log.Warn().Str("source_ip", ip).Str("username", req.Username).Msg("locked source tried to log in")
		h.recordDenial(r, models.AuditAuthFailed, models.AuditResultDenied, "source locked")
		h.recordLoginAttempt(ctx, r, 0, false, "source locked")
		writeError(w, err)
		return
	}

	user, err := h.services.AuthService.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		h.handleFailedLogin(w, r, req.Username, err)
		return
	}

	h.services.ThrottleService.Reset(ip)

	token, claims, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		writeError(w, err)
		return
	}

	session, err := h.services.SessionService.Create(ctx, claims, ip, r.UserAgent())
	if err != nil {
		log.Err(err).Msg("session creation failed")
		writeError(w, err)
		return
	}

	h.recordLoginAttempt(ctx, r, user.ID, true, "")
	h.services.AuditService.Record(models.AuditEntry{
		Action:   models.AuditLoginSuccess,
		User:     user.Username,
		Role:     string(user.Role),
		SourceIP: ip,
		Resource: r.URL.Path,
		Method:   r.Method,
		Result:   models.AuditResultSuccess,
	})

	log.Info().Str("username", user.Username).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Success:            true,
		Token:              token,
		CSRFToken:          session.CSRFToken,
		MustChangePassword: user.MustChangePassword,
		User:               user,
	}, http.StatusOK)
}

// handleFailedLogin registers the failure with the throttle, persists the
// attempt, audits it, and answers with the uniform denial envelope. The
// response never distinguishes an unknown user from a wrong password.
func (h *Handler) handleFailedLogin(w http.ResponseWriter, r *http.Request, username string, verifyErr error) {
	log := logger.FromRequest(r)

	var authErr *service.AuthenticationError
	if !errors.As(verifyErr, &authErr) {
		log.Err(verifyErr).Msg("credential verification failed")
		writeError(w, verifyErr)
		return
	}

	blocked, until := h.services.ThrottleService.RegisterFailure(sourceIP(r))
	h.recordLoginAttempt(r.Context(), r, 0, false, string(authErr.Reason))

	action := models.AuditAuthFailed
	if blocked {
		action = models.AuditIPBlocked
		log.Warn().Str("source_ip", sourceIP(r)).Str("username", username).Time("until", until).Msg("source locked out")
	}
	h.recordDenial(r, action, models.AuditResultFailure, string(authErr.Reason))

	log.Warn().Str("username", username).Str("reason", string(authErr.Reason)).Msg("login failed")
	writeError(w, verifyErr)
}

// recordLoginAttempt persists one login-history row. History failures are
// logged but never fail the request.
func (h *Handler) recordLoginAttempt(ctx context.Context, r *http.Request, userID int64, success bool, failureReason string) {
	record := models.LoginRecord{
		UserID:        userID,
		SourceIP:      sourceIP(r),
		UserAgent:     r.UserAgent(),
		Success:       success,
		FailureReason: failureReason,
	}

	if err := h.services.AuthService.RecordLogin(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to persist login attempt")
	}
}

// logout drops the caller's session. The bearer token stays technically
// valid until its exp, but without a live session it no longer authenticates.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrSessionNotFound)
		return
	}

	h.services.SessionService.Invalidate(session.ID)
	log.Info().Str("username", session.Username).Msg("user logged out")

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: "logged out"}, http.StatusOK)
}

// changePassword verifies the current password and replaces it. A successful
// change clears the must-change flag and drops the caller's other sessions.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, service.NewAuthError(service.ReasonMissingToken, ""))
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid change-password payload")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, user.Username, req.OldPassword, req.NewPassword); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("password change rejected")
		writeError(w, err)
		return
	}

	// every session was established under the old password, the caller's
	// included, so all of them are dropped and the client logs in again
	dropped := h.services.SessionService.InvalidateUser(user.Username)
	log.Info().Int("dropped", dropped).Str("username", user.Username).Msg("password changed, sessions invalidated")

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: "password changed, please log in again"}, http.StatusOK)
}

// roleCatalog returns the static role table for capability matrices.
func (h *Handler) roleCatalog(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RoleCatalog(), http.StatusOK)
}
