package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Prefs     prefs.File
	ThemeName string
	PollTick  time.Duration
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea. All ViewState
// transitions happen in Update.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	prefs    prefs.File
	pollTick time.Duration
	logger   *zap.Logger
	keys     keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// Catalog state
	view      catalog.ViewState
	cursor    int // row within the visible page
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	modal     Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultPollInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "name or height"
	ti.Prompt = "/"
	ti.CharLimit = SearchCharLimit

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		store:    opts.Store,
		prefs:    opts.Prefs,
		pollTick: pollTick,
		logger:   logger,
		keys:     DefaultKeyMap(),
		theme:    GetTheme(opts.ThemeName),
		snapshot: state.Snapshot{Loading: true},
		view:     catalog.DefaultViewState(),
		search:   ti,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(10, m.width/3)
		return m.forwardToModal(themedResizeMsg{theme: m.theme, width: m.width, height: m.height})

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save theme preference failed", zap.String("theme", msg.theme), zap.Error(msg.err))
		}
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey routes keys to the help overlay, the modal, the search input
// or the catalog controls, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.modal != nil {
		return m.forwardToModal(msg)
	}
	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, saveThemeCmd(m.prefs, m.theme.Name)
	}

	// Catalog controls stay inert until the list is ready.
	if m.snapshot.Loading {
		return m, nil
	}
	return m.handleCatalogKey(msg)
}

// handleCatalogKey applies list navigation and filter controls.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextCategory):
		m.view = m.view.WithCategory(catalog.NextCategory(m.view.Category))
	case key.Matches(msg, m.keys.PrevCategory):
		m.view = m.view.WithCategory(catalog.PrevCategory(m.view.Category))
	case key.Matches(msg, m.keys.CycleBucket):
		m.view = m.view.WithBucket(m.view.Bucket.Next())
	case key.Matches(msg, m.keys.ToggleSort):
		m.view = m.view.WithSort(m.view.Sort.Toggle())
	case key.Matches(msg, m.keys.Reset):
		m.view = m.view.Reset()
		m.search.SetValue("")
		m.cursor = 0

	case key.Matches(msg, m.keys.NextPage):
		before := m.view.Page
		m.view = m.view.NextPage(len(m.derivedList()))
		if m.view.Page != before {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.PrevPage):
		before := m.view.Page
		m.view = m.view.PrevPage()
		if m.view.Page != before {
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.page().Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(0, len(m.page().Items)-1)

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}

	m.clampCursor()
	return m, nil
}

// handleSearchInput feeds keys to the search box and re-filters on every
// keystroke.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.view.Search {
		m.view = m.view.WithSearch(v)
		m.clampCursor()
	}
	return m, cmd
}

// openSelected opens the detail modal for the highlighted row.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	items := m.page().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return m, nil
	}
	m.view = m.view.Open(items[m.cursor])
	if e, ok := m.view.Inspected(); ok {
		m.modal = newDetailModal(e, m.theme, m.width, m.height)
	}
	return m, nil
}

// forwardToModal passes msg to the open modal and closes it on request.
func (m Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		return m, nil
	}
	modal, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
		m.view = m.view.Close()
		return m, cmd
	}
	m.modal = modal
	return m, cmd
}

// handleTick polls the store until the catalog is ready. The list never
// changes after that, so polling stops.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.store == nil || !m.snapshot.Loading {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// derivedList is the filtered and sorted list before pagination.
func (m Model) derivedList() []catalog.Entity {
	return catalog.DeriveList(m.snapshot.Entities, m.view)
}

// page is the visible page of the derived list.
func (m Model) page() catalog.PageView {
	return catalog.Derive(m.snapshot.Entities, m.view, catalog.PageSize)
}

func (m *Model) clampCursor() {
	n := len(m.page().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// renderMain renders header, command bar and the catalog box.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderCatalog())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type themeSavedMsg struct {
	theme string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func saveThemeCmd(f prefs.File, name string) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{theme: name, err: f.SaveTheme(name)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
