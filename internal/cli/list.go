package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
)

var (
	listEnabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	listDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all flags with their effective values",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	evaluator, err := newLocalEvaluator(c, zap.NewNop())
	if err != nil {
		return err
	}

	snapshot := evaluator.Snapshot()
	for _, flag := range flags.All() {
		state := listDisabledStyle.Render("off")
		if snapshot[flag] {
			state = listEnabledStyle.Render("on ")
		}
		cmd.Println(fmt.Sprintf("%s  %-30s %3d%%", state, flag, evaluator.Rollout(flag)))
	}

	return nil
}
