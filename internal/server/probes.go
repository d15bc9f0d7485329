package server

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jobdeck/flaggate/pkg/flags"
)

// Probe is a named dependency check run by the health endpoint.
type Probe interface {
	Name() string
	Check(ctx context.Context) error
}

type probe struct {
	name  string
	check func(ctx context.Context) error
}

func NewProbe(name string, check func(ctx context.Context) error) Probe {
	return &probe{
		name:  name,
		check: check,
	}
}

func (p *probe) Name() string {
	return p.name
}

func (p *probe) Check(ctx context.Context) error {
	return p.check(ctx)
}

// NewOverridesFileProbe reports whether the overrides file is readable
// and well-formed. A missing file is healthy, the layer is optional.
func NewOverridesFileProbe(source *flags.FileSource) Probe {
	return NewProbe("overrides_file", func(_ context.Context) error {
		_, err := source.Load()
		return err
	})
}

// NewEvaluatorProbe reports whether the evaluator finished its layered
// initialization.
func NewEvaluatorProbe(evaluator *flags.Evaluator) Probe {
	return NewProbe("evaluator", func(_ context.Context) error {
		if !evaluator.Initialized() {
			return errors.New("evaluator not initialized")
		}
		return nil
	})
}
