package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_TokenParamName(t *testing.T) {
	assert.Equal(t, "token", Config{}.TokenParamName())
	assert.Equal(t, "key", Config{ParamName: "key"}.TokenParamName())
	assert.Equal(t, "fn", Config{ParamName: "key", ParamNameFunc: func() string { return "fn" }}.TokenParamName())
	assert.Equal(t, "key", Config{ParamName: "key", ParamNameFunc: func() string { return "" }}.TokenParamName())
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrEmptyToken)
	assert.NoError(t, Config{Token: "x"}.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CROCODOC_TOKEN", "env-token")
	t.Setenv("CROCODOC_TIMEOUT", "15s")
	t.Setenv("CROCODOC_DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "token", cfg.ParamName)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Setenv("CROCODOC_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfigFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crocodoc.yml")

	data, err := Config{Token: "file-token", ParamName: "token", Timeout: 2 * time.Minute}.MarshalYAMLFile()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "token", cfg.ParamName)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unterminated"), 0o644))
	_, err = LoadConfigFile(path)
	assert.Error(t, err)
}
