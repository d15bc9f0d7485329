package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
)

var getCmd = &cobra.Command{
	Use:   "get <flag>",
	Short: "Print the effective value of a single flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	evaluator, err := newLocalEvaluator(c, zap.NewNop())
	if err != nil {
		return err
	}

	flag := flags.Flag(args[0])
	state := "off"
	if evaluator.IsEnabled(flag) {
		state = "on"
	}

	if !flag.Known() {
		cmd.Println(flag, "is not a recognized flag, evaluating to off")
		return nil
	}

	cmd.Println(flag, state, "rollout", evaluator.Rollout(flag))
	return nil
}
