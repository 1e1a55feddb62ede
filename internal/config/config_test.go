package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"PORT",
	"TFCC_HOST",
	"MONGODB_URI",
	"NODE_ENV",
	"TFCC_ENV",
	"TFCC_BUILD_DIR",
	"TFCC_CONTENT_DB",
	"TFCC_LOCALE",
	"TFCC_DB_CONNECT_TIMEOUT",
}

// isolateConfigEnv saves and unsets all config env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 5003, cfg.Port)
	assert.Equal(t, ":5003", cfg.ListenAddr)
	assert.Equal(t, "mongodb://localhost:27017/tfcc", cfg.MongoURI)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "client/dist", cfg.BuildDir)
	assert.Equal(t, "tfcc-content.db", cfg.ContentDBPath)
	assert.Equal(t, "en-IN", cfg.Locale.String())
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TFCC_HOST", "127.0.0.1")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017/events")
	t.Setenv("TFCC_ENV", "Production")
	t.Setenv("TFCC_BUILD_DIR", "/srv/www")
	t.Setenv("TFCC_CONTENT_DB", "/tmp/content.db")
	t.Setenv("TFCC_LOCALE", "en-US")
	t.Setenv("TFCC_DB_CONNECT_TIMEOUT", "3s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "mongodb://db.internal:27017/events", cfg.MongoURI)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/srv/www", cfg.BuildDir)
	assert.Equal(t, "/tmp/content.db", cfg.ContentDBPath)
	assert.Equal(t, "en-US", cfg.Locale.String())
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
}

// TestLoad_NodeEnv verifies the NODE_ENV fallback used by existing deployment
// manifests, and that TFCC_ENV wins when both are set.
func TestLoad_NodeEnv(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("NODE_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())

	t.Setenv("TFCC_ENV", "staging")

	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoad_InvalidPort(t *testing.T) {
	for _, v := range []string{"abc", "0", "70000", "-1"} {
		t.Run(v, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("PORT", v)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "PORT")
		})
	}
}

func TestLoad_InvalidLocale(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TFCC_LOCALE", "not a locale!")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TFCC_LOCALE")
}

func TestLoad_InvalidConnectTimeout(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TFCC_DB_CONNECT_TIMEOUT", "soon")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TFCC_DB_CONNECT_TIMEOUT")
}
