package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobdeck/flaggate/internal/view/messages"
	"github.com/jobdeck/flaggate/pkg/flags"
)

// WaitForChange blocks on the change subscription and re-arms itself
// from the model after each delivery.
func WaitForChange(subscription flags.ChangeSubscription) tea.Cmd {
	return func() tea.Msg {
		change, more := <-subscription
		if !more {
			return messages.SubscriptionClosed{}
		}
		return messages.FlagChanged{Change: change}
	}
}

// ToggleFlag flips a flag through the evaluation service.
func ToggleFlag(service flags.Service, flag flags.Flag) tea.Cmd {
	return func() tea.Msg {
		service.Update(flag, !service.IsEnabled(flag))
		return nil
	}
}
