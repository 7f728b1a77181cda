package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/ui/input/types"
)

// NormalMode handles keys on the home screen
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, types.Keys.Open):
		return []types.Action{types.OpenSearchAction{}}, true
	case key.Matches(msg, types.Keys.Close):
		// esc closes from anywhere; with nothing open this is a no-op downstream
		return []types.Action{types.CloseSearchAction{}}, true
	case key.Matches(msg, types.Keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, types.Keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
