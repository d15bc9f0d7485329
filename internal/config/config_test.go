package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobdeck/flaggate/pkg/flags"
)

func environment(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, found := vars[key]
		return value, found
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(environment(nil))
	require.NoError(t, err)

	require.Equal(t, flags.TierDevelopment, c.Tier)
	require.Equal(t, ":8080", c.HTTPAddr)
	require.Equal(t, DefaultOverridesPath(), c.OverridesFile)
	require.True(t, c.WatchFile)
	require.True(t, c.Debug)
}

func TestLoadTier(t *testing.T) {
	c, err := Load(environment(map[string]string{
		EnvTier: "production",
	}))
	require.NoError(t, err)

	require.Equal(t, flags.TierProduction, c.Tier)
	require.False(t, c.Debug)
}

func TestLoadInvalidTier(t *testing.T) {
	_, err := Load(environment(map[string]string{
		EnvTier: "qa",
	}))
	require.Error(t, err)
}

func TestLoadAddrAndOverridesFile(t *testing.T) {
	c, err := Load(environment(map[string]string{
		EnvHTTPAddr:      ":9090",
		EnvOverridesFile: "/etc/flaggate/overrides.yaml",
	}))
	require.NoError(t, err)

	require.Equal(t, ":9090", c.HTTPAddr)
	require.Equal(t, "/etc/flaggate/overrides.yaml", c.OverridesFile)
}
