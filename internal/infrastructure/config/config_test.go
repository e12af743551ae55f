package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "SAM_API_KEY", "SAM_API_URL",
		"SAM_TIMEOUT", "SAM_MOCK", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg := LoadFromEnv()
		assert.Equal(t, DefaultPort, cfg.Server.Port)
		assert.Empty(t, cfg.Server.AllowedOrigins)
		assert.Empty(t, cfg.SAM.APIKey)
		assert.Equal(t, DefaultSAMBaseURL, cfg.SAM.BaseURL)
		assert.Equal(t, DefaultSAMTimeout, cfg.SAM.Timeout)
		assert.False(t, cfg.SAM.Mock)
		assert.Equal(t, "info", cfg.Observability.Logging.Level)
		assert.Equal(t, "text", cfg.Observability.Logging.Format)
	})

	t.Run("reads variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "8081")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("SAM_API_KEY", "test-key")
		t.Setenv("SAM_API_URL", "http://localhost:9999/search")
		t.Setenv("SAM_TIMEOUT", "5s")
		t.Setenv("SAM_MOCK", "true")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := LoadFromEnv()
		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "test-key", cfg.SAM.APIKey)
		assert.Equal(t, "http://localhost:9999/search", cfg.SAM.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.SAM.Timeout)
		assert.True(t, cfg.SAM.Mock)
		assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	})

	t.Run("ignores malformed numbers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "not-a-port")
		t.Setenv("SAM_TIMEOUT", "soon")

		cfg := LoadFromEnv()
		assert.Equal(t, DefaultPort, cfg.Server.Port)
		assert.Equal(t, DefaultSAMTimeout, cfg.SAM.Timeout)
	})
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_SAM_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
  allowed_origins:
    - https://chat.example
sam:
  api_key: ${TEST_SAM_KEY}
  timeout: 12s
observability:
  logging:
    format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://chat.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "from-env", cfg.SAM.APIKey)
	assert.Equal(t, 12*time.Second, cfg.SAM.Timeout)
	assert.Equal(t, DefaultSAMBaseURL, cfg.SAM.BaseURL)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoad_PortFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: ${PORT}\n"), 0o600))

	t.Setenv("PORT", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)

	t.Setenv("PORT", "8082")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8082, cfg.Server.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrEnvWithPath_FallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAM_API_KEY", "env-key")

	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "env-key", cfg.SAM.APIKey)
}

func TestConfig_Mode(t *testing.T) {
	tests := []struct {
		name string
		sam  SAMConfig
		want Mode
	}{
		{"no key", SAMConfig{}, ModeMockNoCredential},
		{"no key with mock flag", SAMConfig{Mock: true}, ModeMockNoCredential},
		{"key", SAMConfig{APIKey: "k"}, ModeUpstream},
		{"key with mock flag", SAMConfig{APIKey: "k", Mock: true}, ModeMockExplicit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SAM: tt.sam}
			assert.Equal(t, tt.want, cfg.Mode())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{Port: 8080},
		SAM:    SAMConfig{BaseURL: DefaultSAMBaseURL, Timeout: time.Second},
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Server.Port = 0
	bad.SAM.Timeout = 0
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "sam.timeout")
}

func TestGetAPIKey(t *testing.T) {
	t.Setenv("SAM_GOV_API_KEY", "secondary")
	cfg := &Config{}

	assert.Equal(t, "direct", cfg.GetAPIKey("direct", "SAM_GOV_API_KEY"))
	assert.Equal(t, "secondary", cfg.GetAPIKey("", "MISSING_KEY", "SAM_GOV_API_KEY"))
	assert.Empty(t, cfg.GetAPIKey("", "MISSING_KEY"))
}
