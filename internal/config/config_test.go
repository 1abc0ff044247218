package config_test

import (
	"testing"

	"emailsieve/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("does-not-exist.yml")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "list", cfg.Extractor.OutputFormat)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.NotZero(t, cfg.GracefulShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EXTRACTOR_OUTPUT_FORMAT", "obfuscation")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := config.Load("does-not-exist.yml")
	require.NoError(t, err)

	require.Equal(t, "obfuscation", cfg.Extractor.OutputFormat)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
}
