package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/internal/app"
	"github.com/jobdeck/flaggate/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the flag evaluation HTTP service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFilePath, err := config.SetupLogger(c.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cmd.Println("logging to", logFilePath)
	logger.Info("starting",
		zap.String("tier", string(c.Tier)),
		zap.String("addr", c.HTTPAddr),
		zap.String("overrides", c.OverridesFile),
	)

	a := app.NewApp(c, logger)
	err = a.Initialize()
	if err != nil {
		return err
	}
	defer a.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}
