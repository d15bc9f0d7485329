package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/internal/config"
	"github.com/jobdeck/flaggate/internal/server"
	"github.com/jobdeck/flaggate/pkg/flags"
)

// App wires the evaluator, the overrides watcher and the HTTP server
// together for the serve command.
type App struct {
	Evaluator *flags.Evaluator

	config  *config.Config
	logger  *zap.Logger
	source  *flags.FileSource
	watcher *flags.Watcher
	server  *server.Server

	ctx  context.Context
	quit context.CancelFunc
}

func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	ctx, quit := context.WithCancel(context.Background())

	return &App{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		quit:   quit,
	}
}

func (a *App) Initialize() error {
	a.source = flags.NewFileSource(a.config.OverridesFile, a.logger)

	a.Evaluator = flags.NewEvaluator(
		flags.WithLogger(a.logger),
		flags.WithTier(a.config.Tier),
		flags.WithFileSource(a.source),
	)

	err := a.Evaluator.Initialize()
	if err != nil {
		return errors.Wrap(err, "failed to initialize evaluator")
	}

	if a.config.WatchFile {
		a.watcher, err = flags.NewWatcher(a.config.OverridesFile, a.Evaluator,
			flags.WithWatcherLogger(a.logger),
		)
		if err != nil {
			return errors.Wrap(err, "failed to create overrides watcher")
		}

		err = a.watcher.Start()
		if err != nil {
			// the overrides directory may not exist yet, run without hot reload
			a.logger.Warn("overrides watcher disabled", zap.Error(err))
			a.watcher = nil
		}
	}

	handler := server.NewHandler(server.HandlerOptions{
		Flags:  a.Evaluator,
		Logger: a.logger,
		Probes: []server.Probe{
			server.NewEvaluatorProbe(a.Evaluator),
			server.NewOverridesFileProbe(a.source),
		},
	})
	a.server = server.NewServer(a.config.HTTPAddr, handler, a.logger)

	return nil
}

// Run blocks until the context is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := a.server.Start()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
	case <-a.ctx.Done():
	}

	return nil
}

func (a *App) Stop() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.server != nil {
		err := a.server.Stop()
		if err != nil {
			a.logger.Error("failed to stop server", zap.Error(err))
		}
	}
	if a.Evaluator != nil {
		a.Evaluator.Stop()
	}
	a.quit()
}
