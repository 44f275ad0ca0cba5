package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-asset-guard/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given user.
//
// The token carries models.Claims, which include the username, the role the
// user held at issue time, the flattened permission names, plus the standard
// registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time, also part of the session key
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	user          - the user the token is issued for
//	issuer        - identifier of the token issuer (e.g. service name)
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns the signed token string, the claims embedded in it, and an error
// that is non-nil if parameters are invalid or signing fails.
func GenerateJWTToken(user *models.User, issuer string, tokenDuration time.Duration, signKey string) (string, *models.Claims, error) {
	if user == nil || user.Username == "" || issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", nil, errors.New("invalid params for generating JWT Token")
	}

	claims := models.NewClaims(*user, issuer, time.Now(), tokenDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", nil, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, &claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC-SHA256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Username claim presence
//
// Callers that need to distinguish failure causes can use errors.Is with the
// jwt/v5 sentinel errors (jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid,
// jwt.ErrTokenMalformed), which are preserved in the returned error chain.
//
// Returns the parsed claims and an error that is non-nil if validation fails
// or required claims are missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (*models.Claims, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return nil, errors.New("empty username claim")
	}
	if claims.IssuedAt == nil {
		return nil, errors.New("missing issued-at claim")
	}

	return claims, nil
}

// ParseBearerToken extracts the raw token from an Authorization header value
// of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
