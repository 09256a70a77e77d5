package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{".png", ".jpg"}, splitList(" .png, ,.jpg "))
	assert.Equal(t, []string{"a", "b"}, splitList([]any{"a", " b "}))
	assert.Equal(t, []string{"x"}, splitList([]string{"x", ""}))
	assert.Empty(t, splitList(nil))
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("BA_TEST_SECRET", "s3cret")
	viper.AutomaticEnv()

	assert.Equal(t, "s3cret", expandEnvVar("${BA_TEST_SECRET}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Equal(t, "", expandEnvVar("${BA_TEST_UNSET}"))
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.Postgres.DSN = "postgres://localhost/db"
	require.ErrorContains(t, cfg.Validate(), "auth.api_keys")

	cfg.Auth.APIKeys = []string{"k"}
	cfg.Upload.Dir = "/tmp/uploads"
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("AUTH_API_KEYS", "k1,k2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Auth.APIKeys)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxSizeBytes)
	assert.Contains(t, cfg.Upload.AllowedExtensions, ".png")
	assert.Equal(t, 2, cfg.Admin.RetryCount)
}
