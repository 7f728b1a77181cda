package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/ui/input/types"
)

// SearchMode handles keys while the overlay is shown
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, consumed := m.TextInputMode.HandleKey(msg, ctx); consumed {
		return actions, true
	}

	// The panel is on its way out, swallow typing until it is gone
	if ctx.Session().IsClosing() {
		if msg.String() == "ctrl+k" {
			return []types.Action{types.OpenSearchAction{}}, true
		}
		return nil, true
	}

	switch {
	case msg.String() == "ctrl+k":
		return []types.Action{types.OpenSearchAction{}}, true
	case key.Matches(msg, types.Keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, types.Keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, types.Keys.Activate):
		if ctx.Session().SelectedIndex < 0 || ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true
	}
	return nil, false
}
