package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "APP_POOL_MIN", "APP_POOL_MAX", "APP_ADDR", "APP_GRPC_HEALTH_ADDR",
		"APP_QUERY_TIMEOUT", "APP_ADMIN_TOKEN_HASH", "LOG_LEVEL", "OTEL_SERVICE_NAME", "APP_CONFIG_FILE", "OTEL_EXPORTER_OTLP_ENDPOINT", "APP_TRACE_STDOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/stencil")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int32(1), cfg.PoolMin)
	require.Equal(t, int32(10), cfg.PoolMax)
	require.Equal(t, ":8000", cfg.HTTPAddr)
	require.Equal(t, 30*time.Second, cfg.QueryTimeout)
	require.Empty(t, cfg.GRPCHealthAddr)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_PoolBounds(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/stencil")

	t.Setenv("APP_POOL_MIN", "5")
	t.Setenv("APP_POOL_MAX", "2")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("APP_POOL_MIN", "x")
	t.Setenv("APP_POOL_MAX", "10")
	_, err = Load()
	require.ErrorContains(t, err, "APP_POOL_MIN")

	t.Setenv("APP_POOL_MIN", "2")
	t.Setenv("APP_POOL_MAX", "4")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int32(2), cfg.PoolMin)
	require.Equal(t, int32(4), cfg.PoolMax)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_url: postgres://file/stencil\npool_max: 20\naddr: \":9000\"\nquery_timeout: 2s\n",
	), 0o600))
	t.Setenv("APP_CONFIG_FILE", path)
	t.Setenv("APP_ADDR", ":9100")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://file/stencil", cfg.DatabaseURL)
	require.Equal(t, int32(20), cfg.PoolMax)
	require.Equal(t, ":9100", cfg.HTTPAddr)
	require.Equal(t, 2*time.Second, cfg.QueryTimeout)
}
