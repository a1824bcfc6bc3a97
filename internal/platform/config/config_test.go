// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults and list parsing from the environment.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")
	t.Setenv("DATABASE_URL", "postgres://localhost/lingopress")
	t.Setenv("EXTRA_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.PublicCacheTTL)
	assert.Equal(t, "lingopress.app", cfg.AuthIssuer)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.ExtraOrigins)
	assert.True(t, cfg.MigrationAuto)
}

func TestLoad_MissingPublicKey(t *testing.T) {
	t.Setenv("JWT_PUBLIC_KEY_PATH", "")
	t.Setenv("STORE_DRIVER", "memory")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"postgres_ok", config.Config{StoreDriver: "postgres", DatabaseURL: "postgres://x", RateLimitRPS: 1, RateLimitBurst: 1}, false},
		{"postgres_missing_url", config.Config{StoreDriver: "postgres", RateLimitRPS: 1, RateLimitBurst: 1}, true},
		{"mongo_missing_url", config.Config{StoreDriver: "mongo", RateLimitRPS: 1, RateLimitBurst: 1}, true},
		{"memory_dev", config.Config{StoreDriver: "memory", Environment: "development", RateLimitRPS: 1, RateLimitBurst: 1}, false},
		{"memory_prod", config.Config{StoreDriver: "memory", Environment: "production", RateLimitRPS: 1, RateLimitBurst: 1}, true},
		{"unknown_driver", config.Config{StoreDriver: "sqlite", RateLimitRPS: 1, RateLimitBurst: 1}, true},
		{"zero_rate", config.Config{StoreDriver: "memory"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
