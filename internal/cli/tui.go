package cli

import (
	"github.com/spf13/cobra"

	"github.com/jobdeck/flaggate/internal/config"
	"github.com/jobdeck/flaggate/internal/view"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactively toggle flags for local experimentation",
	Args:  cobra.NoArgs,
	RunE:  runTui,
}

func runTui(_ *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	// log to file, the terminal belongs to the TUI
	logger, _, err := config.SetupLogger(c.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	evaluator, err := newLocalEvaluator(c, logger)
	if err != nil {
		return err
	}
	defer evaluator.Stop()

	return view.Run(evaluator, logger)
}
