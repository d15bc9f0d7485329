package flags

import (
	"go.uber.org/zap"
)

type Option func(*Evaluator)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

func WithTier(tier Tier) Option {
	return func(e *Evaluator) {
		e.tier = tier
	}
}

// WithRollouts replaces the compiled-in rollout percentage table.
func WithRollouts(rollouts map[Flag]int) Option {
	return func(e *Evaluator) {
		e.baseRollouts = rollouts
	}
}

// WithFileSource attaches an overrides file layered between the tier
// bundle and environment variables.
func WithFileSource(source *FileSource) Option {
	return func(e *Evaluator) {
		e.source = source
	}
}

// WithEnvironment replaces the environment lookup. Tests use this to
// avoid touching the process environment.
func WithEnvironment(lookupEnv func(key string) (string, bool)) Option {
	return func(e *Evaluator) {
		e.lookupEnv = lookupEnv
	}
}
