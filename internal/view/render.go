package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jobdeck/flaggate/pkg/flags"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("flaggate"))
	b.WriteString("\n\n")

	for i, flag := range m.flagList {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		state := disabledStyle.Render("off")
		if m.values[flag] {
			state = enabledStyle.Render("on ")
		}

		line := fmt.Sprintf("%s%s %-30s %s", marker, state, flag, m.renderRollout(flag))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderUserPreview())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · space toggle · u user preview · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) renderRollout(flag flags.Flag) string {
	percentage := m.service.Rollout(flag)
	if percentage == flags.FullRollout {
		return helpStyle.Render("100%")
	}
	return fmt.Sprintf("%3d%%", percentage)
}

func (m model) renderUserPreview() string {
	if m.typing {
		return "user: " + m.userInput.View()
	}

	userID := m.userID()
	if userID == "" {
		return helpStyle.Render("no user selected")
	}

	flag := m.flagList[m.cursor]
	decision := disabledStyle.Render("off")
	if m.service.IsEnabledForUser(flag, userID) {
		decision = enabledStyle.Render("on")
	}

	return fmt.Sprintf("%s → bucket %d → %s for %s",
		userID, flags.Bucket(userID), decision, flag)
}
