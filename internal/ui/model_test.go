package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesearch/internal/config"
	"sitesearch/internal/index"
	"sitesearch/internal/search"
	inputtypes "sitesearch/internal/ui/input/types"
	"sitesearch/internal/ui/views"
)

const indexJSON = `{"pages":[
	{"title":"Hello World","summary":"A <em>first</em> post","section":"blog","date":"2024-01-01","permalink":"/hello/"},
	{"title":"Weather station","summary":"Sensors on the roof","section":"projects","date":"2023-06-10","permalink":"/projects/weather/"}
]}`

type countingSource struct {
	index.Source
	calls atomic.Int32
}

func (s *countingSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls.Add(1)
	return s.Source.Fetch(ctx)
}

func writeIndex(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte(indexJSON), 0o644))
	return path
}

func newTestModel(t *testing.T, source index.Source, cfg *config.Config) *Model {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
		cfg.BaseURL = "https://example.com"
	}
	ctrl := search.NewController(search.Options{
		Store:      index.NewStore(source, nil),
		FocusDelay: time.Millisecond,
		CloseDelay: time.Millisecond,
		Clean:      views.StripTags,
	})
	m := NewModel(context.Background(), cfg, ctrl)
	m.statusTimeout = time.Millisecond
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

// run executes cmd and feeds the model its own messages until nothing is
// left. Index results are held back and returned when hold is set.
func run(t *testing.T, m *Model, cmd tea.Cmd, hold bool) []tea.Msg {
	t.Helper()
	var held []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case indexLoadedMsg:
			if hold {
				held = append(held, msg)
				continue
			}
			_, next := m.Update(msg)
			queue = append(queue, next)
		case timerMsg, OpenSearchMsg, CloseSearchMsg, clearStatusMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
	return held
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var (
	ctrlK = tea.KeyMsg{Type: tea.KeyCtrlK}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestOpenLoadsIndexOnce(t *testing.T) {
	source := &countingSource{Source: &index.FileSource{Path: writeIndex(t)}}
	m := newTestModel(t, source, nil)

	run(t, m, press(m, ctrlK), false)
	assert.Equal(t, search.PhaseOpen, m.Session().Phase)
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.True(t, m.inputHandler.TextInput().Focused())
	assert.True(t, m.ctrl.Store().Ready())
	assert.Len(t, m.ctrl.Store().Pages(), 2)

	run(t, m, press(m, esc), false)
	assert.Equal(t, search.PhaseClosed, m.Session().Phase)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	run(t, m, press(m, ctrlK), false)
	assert.Equal(t, search.PhaseOpen, m.Session().Phase)
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestTypingFiltersAndRenders(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	run(t, m, press(m, ctrlK), false)

	assert.Contains(t, m.View(), "Start searching")

	typeText(m, "hello")
	assert.Equal(t, "hello", m.Session().Query)
	assert.Equal(t, 1, m.ResultCount())
	assert.Equal(t, -1, m.Session().SelectedIndex)

	view := m.View()
	assert.Contains(t, view, "Hello World")
	assert.Contains(t, view, "blog · Jan 1, 2024")
	assert.Contains(t, view, "A first post")
	assert.NotContains(t, view, "Weather station")

	typeText(m, "zzz")
	assert.Contains(t, m.View(), "No results found")
}

func TestNavigationClamps(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	run(t, m, press(m, ctrlK), false)
	typeText(m, "o") // matches both pages

	require.Equal(t, 2, m.ResultCount())
	press(m, up)
	assert.Equal(t, -1, m.Session().SelectedIndex)
	press(m, down)
	press(m, down)
	press(m, down)
	assert.Equal(t, 1, m.Session().SelectedIndex)
	assert.Contains(t, m.View(), "› ▸ Weather station")
	press(m, up)
	assert.Equal(t, 0, m.Session().SelectedIndex)

	typeText(m, "r")
	assert.Equal(t, -1, m.Session().SelectedIndex)
}

func TestEnterActivatesAndCloses(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	run(t, m, press(m, ctrlK), false)
	typeText(m, "hello")
	press(m, down)

	cmd := press(m, enter)
	assert.Equal(t, "Opened https://example.com/hello/", m.status)
	assert.Equal(t, "https://example.com/hello/", m.lastOpened)
	assert.Equal(t, search.PhaseClosing, m.Session().Phase)

	run(t, m, cmd, false)
	assert.Equal(t, search.PhaseClosed, m.Session().Phase)
	assert.Equal(t, "", m.Session().Query)
	assert.Equal(t, -1, m.Session().SelectedIndex)
	assert.Equal(t, "", m.inputHandler.TextInput().Value())
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Last opened: https://example.com/hello/")
}

func TestEnterWithoutSelectionDoesNothing(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	run(t, m, press(m, ctrlK), false)
	typeText(m, "hello")

	press(m, enter)
	assert.Equal(t, search.PhaseOpen, m.Session().Phase)
	assert.Empty(t, m.lastOpened)
}

func TestReopenDuringCloseCancelsClose(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	run(t, m, press(m, ctrlK), false)
	typeText(m, "hello")

	closeCmd := press(m, esc)
	require.Equal(t, search.PhaseClosing, m.Session().Phase)

	// keys other than ctrl+k are swallowed while closing
	typeText(m, "x")
	assert.Equal(t, "hello", m.Session().Query)

	openCmd := press(m, ctrlK)
	run(t, m, closeCmd, false)
	assert.Equal(t, search.PhaseOpening, m.Session().Phase, "stale close timer must be ignored")

	run(t, m, openCmd, false)
	assert.Equal(t, search.PhaseOpen, m.Session().Phase)
	assert.Equal(t, "hello", m.Session().Query)
}

func TestIndexFailureShowsNoResults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	m := newTestModel(t, &index.FileSource{Path: missing}, nil)
	run(t, m, press(m, ctrlK), false)
	typeText(m, "hello")

	view := m.View()
	assert.Contains(t, view, "No results found")
	assert.NotContains(t, strings.ToLower(view), "no such file")
	assert.True(t, m.ctrl.Store().Attempted())
	assert.Empty(t, m.ctrl.Store().Pages())
}

func TestLateIndexRefreshesResults(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	held := run(t, m, press(m, ctrlK), true)
	require.Len(t, held, 1)

	typeText(m, "hello")
	assert.Contains(t, m.View(), "No results found")

	m.Update(held[0])
	assert.Equal(t, 1, m.ResultCount())
	assert.Contains(t, m.View(), "Hello World")
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)

	typeText(m, "xyz")
	assert.Equal(t, search.PhaseClosed, m.Session().Phase)
	assert.Equal(t, "", m.Session().Query)
	assert.False(t, m.ctrl.Store().Attempted())

	run(t, m, press(m, esc), false)
	assert.Equal(t, search.PhaseClosed, m.Session().Phase)
}

func TestActivatorMessages(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)

	_, cmd := m.Update(OpenSearchMsg{})
	run(t, m, cmd, false)
	assert.Equal(t, search.PhaseOpen, m.Session().Phase)

	_, cmd = m.Update(CloseSearchMsg{})
	run(t, m, cmd, false)
	assert.Equal(t, search.PhaseClosed, m.Session().Phase)
}

func TestStartOpen(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.StartOpen = true
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, cfg)

	run(t, m, m.Init(), false)
	assert.Equal(t, search.PhaseOpen, m.Session().Phase)
}

func TestInlineHelpToggle(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Contains(t, m.View(), "sitesearch Help")

	press(m, esc)
	assert.NotContains(t, m.View(), "sitesearch Help")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &index.FileSource{Path: writeIndex(t)}, nil)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	assert.IsType(t, tea.QuitMsg{}, msg)
}

func TestOpenerCommand(t *testing.T) {
	url := "https://example.com/hello/"

	assert.False(t, NewOpener("  ").Enabled())
	assert.Nil(t, NewOpener("").Command(url))
	assert.Equal(t, []string{"xdg-open", url}, NewOpener("xdg-open").Command(url))
	assert.Equal(t, []string{"w3m", url, "-no-mouse"}, NewOpener("w3m {url} -no-mouse").Command(url))

	err := NewOpener("xdg-open").Open(url)
	assert.ErrorContains(t, err, "program not set")
}
