package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
)

var enableCmd = &cobra.Command{
	Use:   "enable <flag>",
	Short: "Enable a flag in the local overrides file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOverride(cmd, args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <flag>",
	Short: "Disable a flag in the local overrides file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOverride(cmd, args[0], false)
	},
}

// setOverride writes the overrides file rather than touching a running
// process: a serving instance watching the file reloads the change.
func setOverride(cmd *cobra.Command, name string, enabled bool) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	source := flags.NewFileSource(c.OverridesFile, zap.NewNop())
	err = source.Set(flags.Flag(name), enabled)
	if err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	cmd.Println(name, state, "in", c.OverridesFile)
	return nil
}
