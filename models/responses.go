package models

// APIResponse is the uniform envelope for guard denials and simple
// acknowledgements. Denials always carry `success:false` and a human-readable
// error message that must not leak internals (stack traces, SQL, field names,
// or raw token material).
type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	// RetryAfter is set only on 429 responses: the number of seconds after
	// which the caller may retry.
	RetryAfter int `json:"retryAfter,omitempty"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Success bool `json:"success"`

	// Token is the signed bearer token for subsequent requests.
	Token string `json:"token"`

	// CSRFToken is the session secret to echo in X-CSRF-Token on
	// state-changing requests.
	CSRFToken string `json:"csrf_token"`

	// MustChangePassword tells the client to force a password change before
	// doing anything else.
	MustChangePassword bool `json:"mustChangePassword"`

	User User `json:"user"`
}

// RoleInfo describes one catalog role to API consumers.
type RoleInfo struct {
	Name        Role     `json:"name"`
	Level       int      `json:"level"`
	Permissions []string `json:"permissions"`
	RateQuota   int      `json:"rate_limit"`
}

// RoleCatalog returns the static role table in level order for the
// read-only roles endpoint.
func RoleCatalog() []RoleInfo {
	catalog := make([]RoleInfo, 0, len(Roles()))
	for _, role := range Roles() {
		catalog = append(catalog, RoleInfo{
			Name:        role,
			Level:       role.Level(),
			Permissions: role.BasePermissions().Strings(),
			RateQuota:   role.RateQuota(),
		})
	}
	return catalog
}
