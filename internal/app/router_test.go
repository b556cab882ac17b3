package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoocore/habitat-service/config"
)

// TestInitializeRouter tests handler wiring without database components.
func TestInitializeRouter(t *testing.T) {
	cfg := config.Load()
	cfg.Server.RateLimit = 42
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = map[string]bool{"key": true}
	cfg.Roster.CacheTTL = time.Minute

	components := InitializeRouter(InitializeServices(), nil, cfg)

	require.NotNil(t, components)
	require.NotNil(t, components.Handler)
	require.NotNil(t, components.HealthHandler)
	assert.Equal(t, 42, components.Config.RateLimit)
	assert.True(t, components.Config.EnableAuth)
	assert.Equal(t, map[string]bool{"key": true}, components.Config.APIKeys)
}
