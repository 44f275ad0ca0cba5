package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-asset-guard/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserFromContext(t *testing.T) {
	user := &models.User{ID: 42, Username: "jsmith", Role: models.RoleTechnician}

	tests := []struct {
		name     string
		ctx      context.Context
		wantUser *models.User
		wantOK   bool
	}{
		{
			name:     "user present in context",
			ctx:      context.WithValue(context.Background(), UserCtxKey, user),
			wantUser: user,
			wantOK:   true,
		},
		{
			name:     "user missing from context",
			ctx:      context.Background(),
			wantUser: nil,
			wantOK:   false,
		},
		{
			name:     "value has wrong type",
			ctx:      context.WithValue(context.Background(), UserCtxKey, "jsmith"),
			wantUser: nil,
			wantOK:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gotUser, ok := GetUserFromContext(test.ctx)

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantUser, gotUser)
		})
	}
}

func TestGetSessionFromContext(t *testing.T) {
	session := &models.Session{ID: "abc", Username: "jsmith"}

	tests := []struct {
		name        string
		ctx         context.Context
		wantSession *models.Session
		wantOK      bool
	}{
		{
			name:        "session present in context",
			ctx:         context.WithValue(context.Background(), SessionCtxKey, session),
			wantSession: session,
			wantOK:      true,
		},
		{
			name:        "session missing from context",
			ctx:         context.Background(),
			wantSession: nil,
			wantOK:      false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gotSession, ok := GetSessionFromContext(test.ctx)

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantSession, gotSession)
		})
	}
}

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "user", UserCtxKey.String())
	assert.Equal(t, "session", SessionCtxKey.String())
}
