package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilomad/portfolio-assistant/internal/config"
)

func TestOverridePort_ExplicitFlagWins(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "9191"}))

	cfg := &config.Config{Port: "9090"}
	overridePort(cmd, cfg)

	assert.Equal(t, "9191", cfg.Port)
}

func TestOverridePort_ExplicitDefaultValueWins(t *testing.T) {
	// -p 8080 must override a configured port even though 8080 is also the
	// flag default.
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-p", "8080"}))

	cfg := &config.Config{Port: "9090"}
	overridePort(cmd, cfg)

	assert.Equal(t, "8080", cfg.Port)
}

func TestOverridePort_UnsetFlagKeepsConfig(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Parse(nil))

	cfg := &config.Config{Port: "9090"}
	overridePort(cmd, cfg)

	assert.Equal(t, "9090", cfg.Port)
}
