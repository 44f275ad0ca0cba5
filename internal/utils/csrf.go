package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// csrfTokenBytes is the number of random bytes in a CSRF token.
// The hex-encoded token is twice this length.
const csrfTokenBytes = 32

// GenerateCSRFToken returns a cryptographically random hex-encoded token
// bound to a session at login time and checked on every mutating request.
func GenerateCSRFToken() (string, error) {
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error occurred during generating CSRF token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CSRFTokenEqual compares two CSRF tokens in constant time.
func CSRFTokenEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
