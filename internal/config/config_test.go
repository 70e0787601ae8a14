package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://app.profolio.dev/api",
		"timeout_seconds": 10,
		"token_path": "/tmp/profolio-token"
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://app.profolio.dev/api", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, "/tmp/profolio-token", cfg.TokenPath)
}

func TestLoad_MissingFileUsesEnvAndDefaults(t *testing.T) {
	t.Setenv("PROFOLIO_API_URL", "https://app.profolio.dev/api")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "https://app.profolio.dev/api", cfg.APIBaseURL)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.NotEmpty(t, cfg.TokenPath)
	assert.NotEmpty(t, cfg.ThemeCachePath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"https://file.example.com","timeout_seconds":10}`), 0o600))

	t.Setenv("PROFOLIO_API_URL", "https://env.example.com")
	t.Setenv("PROFOLIO_TIMEOUT_SECONDS", "5")
	t.Setenv("PROFOLIO_VERBOSE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{APIBaseURL: "https://app.profolio.dev", TimeoutSeconds: 30}, ""},
		{"missing url", Config{TimeoutSeconds: 30}, "api_base_url is required"},
		{"bad url", Config{APIBaseURL: "not a url", TimeoutSeconds: 30}, "not a valid URL"},
		{"no scheme", Config{APIBaseURL: "app.profolio.dev", TimeoutSeconds: 30}, "not a valid URL"},
		{"bad timeout", Config{APIBaseURL: "https://app.profolio.dev", TimeoutSeconds: 0}, "timeout_seconds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
