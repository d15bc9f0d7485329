package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jobdeck/flaggate/internal/testcommon"
	"github.com/jobdeck/flaggate/internal/testcommon/matchers"
	"github.com/jobdeck/flaggate/internal/view/messages"
	"github.com/jobdeck/flaggate/pkg/flags"
	mockflags "github.com/jobdeck/flaggate/pkg/flags/mock"
)

func TestModel(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite

	service      *mockflags.MockService
	subscription flags.ChangeSubscription
}

func (s *Suite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mockflags.NewMockService(ctrl)
	s.subscription = make(flags.ChangeSubscription, 1)

	s.service.EXPECT().SubscribeToChanges().Return(s.subscription)
	s.service.EXPECT().Snapshot().Return(map[flags.Flag]bool{
		flags.NewDashboard: true,
	})
}

func (s *Suite) keyMsg(key string) tea.KeyMsg {
	switch key {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func (s *Suite) TestCursorNavigation() {
	m := newModel(s.service, s.Logger)
	s.Require().Equal(0, m.cursor)

	updated, _ := m.Update(s.keyMsg("down"))
	m = updated.(model)
	s.Require().Equal(1, m.cursor)

	updated, _ = m.Update(s.keyMsg("up"))
	m = updated.(model)
	s.Require().Equal(0, m.cursor)

	// cursor never leaves the list
	updated, _ = m.Update(s.keyMsg("up"))
	m = updated.(model)
	s.Require().Equal(0, m.cursor)
}

func (s *Suite) TestToggleFirstFlag() {
	first := flags.All()[0]

	s.service.EXPECT().IsEnabled(matchers.NewFlagMatcher(first)).Return(true)
	s.service.EXPECT().Update(matchers.NewFlagMatcher(first), false).Times(1)

	m := newModel(s.service, s.Logger)
	_, cmd := m.Update(s.keyMsg("space"))
	s.Require().NotNil(cmd)

	// the toggle happens inside the returned command
	s.Require().Nil(cmd())
}

func (s *Suite) TestFlagChangedMessage() {
	m := newModel(s.service, s.Logger)
	s.Require().True(m.values[flags.NewDashboard])

	updated, cmd := m.Update(messages.FlagChanged{
		Change: flags.Change{Flag: flags.NewDashboard, Enabled: false},
	})
	m = updated.(model)

	s.Require().False(m.values[flags.NewDashboard])
	s.Require().NotNil(cmd, "model must keep listening for changes")
}

func (s *Suite) TestSubscriptionClosedQuits() {
	m := newModel(s.service, s.Logger)

	updated, cmd := m.Update(messages.SubscriptionClosed{})
	m = updated.(model)

	s.Require().True(m.quitting)
	s.Require().NotNil(cmd)
}

func (s *Suite) TestQuitKey() {
	m := newModel(s.service, s.Logger)

	updated, cmd := m.Update(s.keyMsg("q"))
	m = updated.(model)

	s.Require().True(m.quitting)
	s.Require().NotNil(cmd)
	s.Require().Empty(m.View())
}
