package types

// Overlay lifecycle actions
type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

type CloseSearchAction struct{}

func (a CloseSearchAction) Type() string { return "close_search" }

// Result list actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Application actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
