package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"GRPC_ADDR", "ADMIN_ADDR", "CATALOG_SIZE", "QUORUM", "GATE_READS",
	"ROTATION_INTERVAL", "SERIAL_POLICY", "NATS_URL", "NATS_STREAM",
	"LOG_LEVEL", "LOG_FORMAT", "ENV_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.GrpcAddr)
	assert.Equal(t, ":8081", cfg.AdminAddr)
	assert.Equal(t, 5, cfg.Catalog.Size)
	assert.Equal(t, 3, cfg.Catalog.Quorum)
	assert.True(t, cfg.Catalog.GateReads)
	assert.Equal(t, 5*time.Second, cfg.Catalog.RotationInterval)
	assert.Equal(t, "stable", cfg.Catalog.SerialPolicy)
	assert.Empty(t, cfg.Nats.Url)
	assert.Equal(t, "vendor", cfg.Nats.Stream)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("CATALOG_SIZE", "12")
	t.Setenv("QUORUM", "0")
	t.Setenv("GATE_READS", "false")
	t.Setenv("ROTATION_INTERVAL", "250ms")
	t.Setenv("SERIAL_POLICY", "reassign")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.GrpcAddr)
	assert.Equal(t, 12, cfg.Catalog.Size)
	assert.Equal(t, 0, cfg.Catalog.Quorum)
	assert.False(t, cfg.Catalog.GateReads)
	assert.Equal(t, 250*time.Millisecond, cfg.Catalog.RotationInterval)
	assert.Equal(t, "reassign", cfg.Catalog.SerialPolicy)
	assert.Equal(t, "nats://localhost:4222", cfg.Nats.Url)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "vendor.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CATALOG_SIZE=8\nQUORUM=2\n"), 0o600))
	t.Setenv("QUORUM", "4")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Catalog.Size)
	assert.Equal(t, 4, cfg.Catalog.Quorum, "environment wins over the file")
}

func TestLoadEmptyAdminAddrDisables(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_ADDR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Empty(t, cfg.AdminAddr)
	assert.Equal(t, "localhost:8080", cfg.GrpcAddr, "unset keys keep their defaults")
}

func TestLoadLargeStableCatalog(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_SIZE", "500")
	t.Setenv("SERIAL_POLICY", "stable")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Catalog.Size)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"CATALOG_SIZE":      "0",
		"SERIAL_POLICY":     "random",
		"ROTATION_INTERVAL": "0s",
		"LOG_FORMAT":        "xml",
		"QUORUM":            "-1",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
