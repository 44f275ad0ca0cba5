package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Build_MergePriority(t *testing.T) {
	// Arrange: two sources where the first one should win for shared fields
	builder := newConfigBuilder()
	builder.configs = append(builder.configs,
		&StructuredConfig{
			App: App{TokenSignKey: "from-env"},
		},
		&StructuredConfig{
			App: App{TokenSignKey: "from-flags", TokenIssuer: "issuer-from-flags"},
			Storage: Storage{
				DB: DB{Driver: "sqlite3", DSN: "file:guard.db"},
			},
		},
	)
	builder.withDefaults()

	// Act
	cfg, err := builder.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer-from-flags", cfg.App.TokenIssuer)
	assert.Equal(t, "file:guard.db", cfg.Storage.DB.DSN)
}

func TestConfigBuilder_Build_DefaultsFillGaps(t *testing.T) {
	// Arrange: only the mandatory secret is supplied
	builder := newConfigBuilder()
	builder.configs = append(builder.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})
	builder.withDefaults()

	// Act
	cfg, err := builder.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "go-asset-guard", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, time.Hour, cfg.App.SessionTimeout)
	assert.Equal(t, 5, cfg.App.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.App.LockoutDuration)
	assert.Equal(t, "admin", cfg.App.DefaultPassword)
	assert.Equal(t, 10000, cfg.App.AuditCapacity)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SweepInterval)
}

func TestConfigBuilder_Build_PropagatesSourceError(t *testing.T) {
	// Arrange
	builder := newConfigBuilder()
	builder.err = errors.New("bad source")
	builder.withDefaults()

	// Act
	cfg, err := builder.build()

	// Assert
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfigBuilder_Build_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) {},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "unsupported driver",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenSignKey = "secret"
				cfg.Storage.DB.Driver = "oracle"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			override := &StructuredConfig{}
			test.mutate(override)

			builder := newConfigBuilder()
			builder.configs = append(builder.configs, override)
			builder.withDefaults()

			// Act
			cfg, err := builder.build()

			// Assert
			assert.ErrorIs(t, err, test.wantErr)
			assert.NotNil(t, cfg)
		})
	}
}
