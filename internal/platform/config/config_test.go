package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artjury.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("SESSION_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "artjury", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10.0, cfg.Judging.MaxScore)
	assert.Equal(t, 10, cfg.Judging.TopN)
	assert.True(t, cfg.EnableSwagger)
}

func TestLoadPrecedenceFileThenEnv(t *testing.T) {
	path := writeConfigFile(t, `
service_name: jury-file
http_port: "9000"
enable_swagger: false
store:
  driver: Postgres
  postgres_dsn: postgres://file
session:
  secret: file-secret
  ttl: 2h
judging:
  max_score: 5
  results_top_n: 3
`)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("RESULTS_TOP_N", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jury-file", cfg.ServiceName)
	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.False(t, cfg.EnableSwagger)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://file", cfg.Store.PostgresDSN)
	assert.Equal(t, "file-secret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5.0, cfg.Judging.MaxScore)
	assert.Equal(t, 7, cfg.Judging.TopN)
}

func TestLoadReadsPathFromEnv(t *testing.T) {
	path := writeConfigFile(t, "session:\n  secret: from-env-path\n")
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env-path", cfg.Session.Secret)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(PathEnv, "")

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := Load("")
		assert.ErrorContains(t, err, "session secret")
	})
	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := Load("")
		assert.ErrorContains(t, err, "postgres_dsn")
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := Load("")
		assert.ErrorContains(t, err, "unknown store driver")
	})
	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		t.Setenv("RESULTS_TOP_N", "many")
		_, err := Load("")
		assert.ErrorContains(t, err, "parse env")
	})
}
