package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
)

// Run starts the interactive admin toggle and blocks until the user
// quits. Toggles are process-local experiments, nothing is persisted.
func Run(service flags.Service, logger *zap.Logger) error {
	program := tea.NewProgram(newModel(service, logger))
	_, err := program.Run()
	return errors.Wrap(err, "tui failed")
}
