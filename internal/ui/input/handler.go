package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/ui/input/modes"
	"sitesearch/internal/ui/input/types"
)

// Placeholder is shown in the empty query input
const Placeholder = "Search articles..."

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // query input of the overlay
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = ""
	ti.CharLimit = 256

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

// HandleKey routes a key to the current mode. Keys the mode does not consume
// go to the query input while searching, and produce an UpdateTextAction when
// the query changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || h.currentMode != types.ModeSearch {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// SetMode switches the active mode
func (h *Handler) SetMode(mode types.Mode) {
	h.currentMode = mode
	if mode != types.ModeSearch {
		h.textInput.Blur()
	}
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// FocusInput focuses the query input and starts the cursor blinking
func (h *Handler) FocusInput() tea.Cmd {
	h.textInput.Focus()
	return textinput.Blink
}

// ClearInput empties and blurs the query input
func (h *Handler) ClearInput() {
	h.textInput.Reset()
	h.textInput.Blur()
}

// TextInput returns the query input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Update handles non-keyboard messages for the text input, such as cursor blinks
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
