package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/config"
	"sitesearch/internal/search"
	"sitesearch/internal/ui/input"
	inputtypes "sitesearch/internal/ui/input/types"
	"sitesearch/internal/ui/views"
)

// statusTimeout is how long a status line stays visible
const statusTimeout = 5 * time.Second

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	ctrl   *search.Controller

	// UI-specific state not owned by the controller
	width       int
	height      int
	help        help.Model
	status      string
	lastOpened  string
	showHelp    bool // inline help popup, used when the pager is unavailable
	inPagerMode bool // tracks if we're currently in pager mode

	statusTimeout time.Duration

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	opener       *Opener

	// Program reference for terminal management
	program *tea.Program
}

var _ inputtypes.Context = (*Model)(nil)

// NewModel creates a new UI model around a search controller
func NewModel(ctx context.Context, cfg *config.Config, ctrl *search.Controller) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Model{
		ctx:          ctx,
		config:       cfg,
		ctrl:         ctrl,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		opener:       NewOpener(cfg.OpenCommand),

		statusTimeout: statusTimeout,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.opener.SetProgram(p)
}

// Controller returns the search controller driven by the model
func (m *Model) Controller() *search.Controller {
	return m.ctrl
}

// Session implements inputtypes.Context
func (m *Model) Session() search.Session {
	return m.ctrl.Session()
}

// ResultCount implements inputtypes.Context
func (m *Model) ResultCount() int {
	return m.ctrl.Results().Len()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.config.UISettings.StartOpen {
		return func() tea.Msg { return OpenSearchMsg{} }
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Handle the inline help popup first
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
				return m, nil
			}
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.OpenSearchAction:
		return m.openSearch()

	case inputtypes.CloseSearchAction:
		return m.closeSearch()

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "down":
			m.ctrl.MoveDown()
		case "up":
			m.ctrl.MoveUp()
		}

	case inputtypes.ActivateAction:
		return m.perform(m.ctrl.Activate())

	case inputtypes.UpdateTextAction:
		m.ctrl.SetQuery(a.Text)

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.showHelp = !m.showHelp
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) openSearch() tea.Cmd {
	m.showHelp = false
	effects := m.ctrl.Open()
	if m.ctrl.Session().IsOpen() {
		m.inputHandler.SetMode(inputtypes.ModeSearch)
	}
	return m.perform(effects)
}

func (m *Model) closeSearch() tea.Cmd {
	return m.perform(m.ctrl.Close())
}

// perform turns controller effects into commands
func (m *Model) perform(effects []search.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case search.ScheduleEffect:
			timer := e.Timer
			cmds = append(cmds, tea.Tick(timer.Delay, func(time.Time) tea.Msg {
				return timerMsg{timer: timer}
			}))

		case search.LoadIndexEffect:
			cmds = append(cmds, m.loadIndex())

		case search.FocusInputEffect:
			cmds = append(cmds, m.inputHandler.FocusInput())

		case search.ClearInputEffect:
			m.inputHandler.ClearInput()
			m.inputHandler.SetMode(inputtypes.ModeNormal)

		case search.NavigateEffect:
			cmds = append(cmds, m.navigate(e))

		default:
			log.Printf("UI: unhandled effect %s", effect.Type())
		}
	}
	return tea.Batch(cmds...)
}

// loadIndex returns a command that fetches the index in the background
func (m *Model) loadIndex() tea.Cmd {
	store := m.ctrl.Store()
	ctx := m.ctx
	return func() tea.Msg {
		pages, err := store.Fetch(ctx)
		return indexLoadedMsg{pages: pages, err: err}
	}
}

// navigate follows an activated result and closes the overlay
func (m *Model) navigate(e search.NavigateEffect) tea.Cmd {
	url := m.config.LinkURL(e.Permalink)
	m.lastOpened = url
	m.status = "Opened " + url
	log.Printf("UI: activated %q -> %s", e.Title, url)

	cmds := []tea.Cmd{m.closeSearch(), m.clearStatusLater()}
	if m.opener.Enabled() && m.program != nil {
		cmds = append(cmds, m.fetchOpen(url))
	}
	return tea.Batch(cmds...)
}

// fetchOpen returns a command that runs the open command, pausing and resuming rendering
func (m *Model) fetchOpen(url string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.opener.Open(url)

		m.program.Send(resumeRenderingMsg{})

		return openResultMsg{url: url, err: err}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewHelpPager(m.program, "sitesearch help: "+m.config.IndexLocation()).Show(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenSearchMsg:
		return m, m.openSearch()

	case CloseSearchMsg:
		return m, m.closeSearch()

	case timerMsg:
		return m, m.perform(m.ctrl.Fire(msg.timer))

	case indexLoadedMsg:
		// The list is filled even if the overlay was closed meanwhile
		m.ctrl.Store().Complete(msg.pages, msg.err)
		m.ctrl.Refresh()
		return m, nil

	case openResultMsg:
		if msg.err != nil {
			log.Printf("UI: open %s failed: %v", msg.url, msg.err)
			m.status = fmt.Sprintf("Could not open %s", msg.url)
			return m, m.clearStatusLater()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log and fall back to the inline help
			log.Printf("Help pager failed: %v", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	default:
		// Cursor blinks and other input bookkeeping
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	home := views.HomeState{
		Width:      m.width,
		Height:     m.height,
		Site:       m.ctrl.Store().Source().String(),
		LastOpened: m.lastOpened,
		Status:     m.status,
		HelpLine:   m.help.ShortHelpView(inputtypes.Keys.NormalHelp()),
	}

	session := m.ctrl.Session()
	if !session.IsOpen() {
		if m.showHelp {
			return m.renderer.RenderPopup(home, m.helpRenderer.RenderHelpContent())
		}
		return m.renderer.RenderHome(home)
	}

	panel := views.PanelState{
		Width:     m.width,
		Height:    m.height,
		Input:     m.inputHandler.TextInput().View(),
		Results:   m.ctrl.Results(),
		Selected:  session.SelectedIndex,
		Phase:     session.Phase,
		ShowDates: m.config.UISettings.ShowDates,
		HelpLine:  m.help.ShortHelpView(inputtypes.Keys.SearchHelp()),
	}
	return m.renderer.RenderWithOverlay(home, panel)
}
