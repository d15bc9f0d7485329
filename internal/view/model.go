package view

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/internal/view/commands"
	"github.com/jobdeck/flaggate/internal/view/messages"
	"github.com/jobdeck/flaggate/pkg/flags"
)

// model is the admin toggle screen: the recognized flags with their
// current values and rollout percentages, a cursor, and an optional
// user identifier to preview rollout decisions for.
type model struct {
	service      flags.Service
	subscription flags.ChangeSubscription
	logger       *zap.Logger

	keys     keyMap
	flagList []flags.Flag
	values   map[flags.Flag]bool
	cursor   int

	userInput textinput.Model
	typing    bool
	quitting  bool
}

func newModel(service flags.Service, logger *zap.Logger) model {
	input := textinput.New()
	input.Placeholder = "user id"
	input.CharLimit = 64
	input.Width = 36

	return model{
		service:      service,
		subscription: service.SubscribeToChanges(),
		logger:       logger.Named("view"),
		keys:         defaultKeyMap(),
		flagList:     flags.All(),
		values:       service.Snapshot(),
		userInput:    input,
	}
}

func (m model) Init() tea.Cmd {
	return commands.WaitForChange(m.subscription)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.FlagChanged:
		m.values[msg.Change.Flag] = msg.Change.Enabled
		return m, commands.WaitForChange(m.subscription)

	case messages.SubscriptionClosed:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.typing {
			return m.updateUserInput(msg)
		}
		return m.updateNavigation(msg)
	}

	return m, nil
}

func (m model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.flagList)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		flag := m.flagList[m.cursor]
		m.logger.Info("toggling flag", zap.String("flag", flag.String()))
		return m, commands.ToggleFlag(m.service, flag)

	case key.Matches(msg, m.keys.User):
		m.typing = true
		m.userInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m model) updateUserInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.typing = false
		m.userInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.typing = false
		m.userInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.userInput, cmd = m.userInput.Update(msg)
	return m, cmd
}

func (m model) userID() string {
	return m.userInput.Value()
}
