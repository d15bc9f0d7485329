package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobdeck/flaggate/pkg/flags"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var output bytes.Buffer
	rootCmd.SetOut(&output)
	rootCmd.SetErr(&output)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return output.String()
}

func overridesPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "overrides.yaml")
}

func TestListCommand(t *testing.T) {
	output := execute(t, "--env", "test", "--overrides", overridesPath(t), "list")

	for _, flag := range flags.All() {
		require.Contains(t, output, flag.String())
	}
}

func TestEnableThenGet(t *testing.T) {
	path := overridesPath(t)

	output := execute(t, "--env", "test", "--overrides", path, "enable", "ENABLE_BOOKMARKS_SYNC")
	require.Contains(t, output, "enabled")

	output = execute(t, "--env", "test", "--overrides", path, "get", "ENABLE_BOOKMARKS_SYNC")
	require.Contains(t, output, "on")
}

func TestDisableThenGet(t *testing.T) {
	path := overridesPath(t)

	execute(t, "--env", "test", "--overrides", path, "disable", "ENABLE_SAVED_SEARCHES")
	output := execute(t, "--env", "test", "--overrides", path, "get", "ENABLE_SAVED_SEARCHES")
	require.Contains(t, output, "off")
}

func TestGetUnrecognizedFlag(t *testing.T) {
	output := execute(t, "--env", "test", "--overrides", overridesPath(t), "get", "ENABLE_TIME_TRAVEL")
	require.Contains(t, output, "not a recognized flag")
}

func TestEvalPrintsBucket(t *testing.T) {
	// bucket("user-0001") == 3
	output := execute(t, "--env", "development", "--overrides", overridesPath(t),
		"eval", "ENABLE_JOB_ALERTS", "user-0001")
	require.Contains(t, output, "bucket 3")
}

func TestEvalSample(t *testing.T) {
	output := execute(t, "--env", "development", "--overrides", overridesPath(t),
		"eval", "ENABLE_SAVED_SEARCHES", "--sample", "10")
	require.Contains(t, output, "sampled users")
}

func TestVersionCommand(t *testing.T) {
	output := execute(t, "version")
	require.Contains(t, output, "flaggate")
}
