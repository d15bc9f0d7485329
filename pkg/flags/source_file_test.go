package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeOverrides(t *testing.T, content string) *FileSource {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return NewFileSource(path, zap.NewNop())
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())

	overrides, err := source.Load()
	require.NoError(t, err)
	require.Nil(t, overrides)
}

func TestFileSourceParsesFlagsAndRollouts(t *testing.T) {
	source := writeOverrides(t, `
flags:
  ENABLE_PREMIUM_FEATURES: true
  ENABLE_DARK_MODE: false
rollouts:
  ENABLE_PREMIUM_FEATURES: 25
`)

	overrides, err := source.Load()
	require.NoError(t, err)
	require.NotNil(t, overrides)

	require.Equal(t, map[Flag]bool{
		PremiumFeatures: true,
		DarkMode:        false,
	}, overrides.Flags)
	require.Equal(t, map[Flag]int{
		PremiumFeatures: 25,
	}, overrides.Rollouts)
}

func TestFileSourceSkipsUnknownNames(t *testing.T) {
	source := writeOverrides(t, `
flags:
  ENABLE_TIME_TRAVEL: true
rollouts:
  ENABLE_TELEPORTATION: 5
`)

	overrides, err := source.Load()
	require.NoError(t, err)
	require.Empty(t, overrides.Flags)
	require.Empty(t, overrides.Rollouts)
}

func TestFileSourceMalformedYaml(t *testing.T) {
	source := writeOverrides(t, "flags: [not, a, map]\n")

	_, err := source.Load()
	require.Error(t, err)
}

func TestFileSourceSetCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "overrides.yaml")
	source := NewFileSource(path, zap.NewNop())

	require.NoError(t, source.Set(DarkMode, false))

	overrides, err := source.Load()
	require.NoError(t, err)
	require.Equal(t, map[Flag]bool{DarkMode: false}, overrides.Flags)
}

func TestFileSourceSetPreservesExistingEntries(t *testing.T) {
	source := writeOverrides(t, `
flags:
  ENABLE_PREMIUM_FEATURES: true
rollouts:
  ENABLE_PREMIUM_FEATURES: 25
`)

	require.NoError(t, source.Set(DarkMode, true))

	overrides, err := source.Load()
	require.NoError(t, err)
	require.Equal(t, map[Flag]bool{
		PremiumFeatures: true,
		DarkMode:        true,
	}, overrides.Flags)
	require.Equal(t, map[Flag]int{
		PremiumFeatures: 25,
	}, overrides.Rollouts)
}

func TestFileSourceSetUnknownFlag(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "overrides.yaml"), zap.NewNop())
	require.Error(t, source.Set(Flag("ENABLE_TIME_TRAVEL"), true))
}
