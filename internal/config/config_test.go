package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "APP_SERVICE_NAME", "APP_SERVICE_VERSION", "APP_HTTP_ADDR",
		"APP_READ_TIMEOUT", "APP_WRITE_TIMEOUT", "APP_LOG_LEVEL",
		"DB_URL", "SNAPSHOT_DIR", "CORS_ALLOWED_ORIGINS",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "OPENAI_TIMEOUT",
		"EXTRACT_MAX_UPLOAD_BYTES",
		"UPTRACE_ENABLED", "UPTRACE_DSN",
		"PYROSCOPE_ENABLED", "PYROSCOPE_SERVER_ADDRESS", "PYROSCOPE_APP_NAME",
		"PYROSCOPE_AUTH_TOKEN", "PYROSCOPE_UPLOAD_RATE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.AppEnv)
	assert.Equal(t, "boxscore-api", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.WriteTimeout)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "file:hoopqueens.db", cfg.DBURL)
	assert.Equal(t, "snapshots", cfg.SnapshotDir)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 90*time.Second, cfg.OpenAITimeout)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.False(t, cfg.UptraceEnabled)
	assert.False(t, cfg.PyroscopeEnabled)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Prod")
	t.Setenv("APP_HTTP_ADDR", ":9090")
	t.Setenv("APP_READ_TIMEOUT", "2s")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("DB_URL", "file:league.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	t.Setenv("EXTRACT_MAX_UPLOAD_BYTES", "1048576")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.AppEnv)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "file:league.db", cfg.DBURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, int64(1<<20), cfg.MaxUploadBytes)
}

func TestLoadInvalidAppEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "qa")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid APP_ENV")
}

func TestLoadInvalidDurations(t *testing.T) {
	cases := map[string]string{
		"APP_READ_TIMEOUT":      "soon",
		"APP_WRITE_TIMEOUT":     "later",
		"OPENAI_TIMEOUT":        "whenever",
		"PYROSCOPE_UPLOAD_RATE": "sometimes",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadRejectsNonPositiveLimits(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXTRACT_MAX_UPLOAD_BYTES", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXTRACT_MAX_UPLOAD_BYTES")

	clearEnv(t)
	t.Setenv("OPENAI_TIMEOUT", "-1s")

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_TIMEOUT")
}

func TestLoadUptraceRequiresDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPTRACE_DSN")

	t.Setenv("UPTRACE_DSN", "https://token@uptrace.dev/1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UptraceEnabled)
}

func TestLoadPyroscopeRequiresServerAddress(t *testing.T) {
	clearEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PYROSCOPE_SERVER_ADDRESS")

	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.PyroscopeEnabled)
	assert.Equal(t, cfg.ServiceName, cfg.PyroscopeAppName)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logging.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, logging.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, logging.LevelError, parseLogLevel(" error "))
	assert.Equal(t, logging.LevelInfo, parseLogLevel("verbose"))
}
