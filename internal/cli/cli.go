package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/internal/config"
	"github.com/jobdeck/flaggate/pkg/flags"
)

var (
	flagTier      string
	flagAddr      string
	flagOverrides string
)

var rootCmd = &cobra.Command{
	Use:           "flaggate",
	Short:         "Feature flag service for the jobdeck platform",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTier, "env", "", "runtime tier (development|staging|production|test)")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "http listen address")
	rootCmd.PersistentFlags().StringVar(&flagOverrides, "overrides", "", "path to overrides file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err.Error())
		return 1
	}
	return 0
}

// loadConfig reads the environment once, then lets CLI flags win.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	if flagTier != "" {
		tier, err := flags.ParseTier(flagTier)
		if err != nil {
			return nil, err
		}
		c.Tier = tier
	}
	if flagAddr != "" {
		c.HTTPAddr = flagAddr
	}
	if flagOverrides != "" {
		c.OverridesFile = flagOverrides
	}

	return c, nil
}

// newLocalEvaluator builds an initialized evaluator from the same
// layered sources the server uses.
func newLocalEvaluator(c *config.Config, logger *zap.Logger) (*flags.Evaluator, error) {
	evaluator := flags.NewEvaluator(
		flags.WithLogger(logger),
		flags.WithTier(c.Tier),
		flags.WithFileSource(flags.NewFileSource(c.OverridesFile, logger)),
	)

	err := evaluator.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize evaluator")
	}

	return evaluator, nil
}
