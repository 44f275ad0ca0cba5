package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every bearer token issued by this
// service.
//
// It embeds [jwt.RegisteredClaims] for the standard claim fields (sub, iss,
// iat, exp) and adds the application claims: the principal's username, role,
// and effective permission set. Permissions travel as wire names (strings)
// so the token stays readable by external collaborators; they are folded
// back into a [Permission] bitmask after verification.
type Claims struct {
	Username    string   `json:"username"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`

	jwt.RegisteredClaims
}

// NewClaims builds the claim set for a token issued to user now, valid for
// duration, carrying issuer as the "iss" claim.
func NewClaims(user User, issuer string, now time.Time, duration time.Duration) Claims {
	return Claims{
		Username:    user.Username,
		Role:        user.Role,
		Permissions: user.Permissions(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
}

// PermissionSet folds the wire-name permission claim into the closed bitmask.
// Unknown names grant nothing.
func (c *Claims) PermissionSet() Permission {
	return ParsePermissions(c.Permissions)
}

// SessionKey returns the identifier under which the session registry tracks
// the token's session: one authoritative session per (username, issued-at)
// pair.
func (c *Claims) SessionKey() string {
	var iat int64
	if c.IssuedAt != nil {
		iat = c.IssuedAt.Unix()
	}
	return fmt.Sprintf("%s_%d", c.Username, iat)
}
