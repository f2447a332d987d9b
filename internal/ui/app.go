package ui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/bargain/internal/catalog"
	"github.com/five82/bargain/internal/prefs"
	"github.com/five82/bargain/internal/state"
)

// Catalog is the data source behind the grid and the detail overlay.
type Catalog interface {
	Acquire(ctx context.Context, q catalog.Query) ([]catalog.DealSummary, error)
	Detail(ctx context.Context, gameID string) (*catalog.GameDetail, error)
	Stores(ctx context.Context) (catalog.Stores, error)
	PurchaseURL(dealID string) string
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Catalog      Catalog
	Logger       *zap.Logger
	DefaultStore string
	ThemeName    string
	SortName     string
	PrefsPath    string
	OpenURL      func(string) error // defaults to the system browser
	CopyText     func(string) error // defaults to the system clipboard
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	catalog      Catalog
	logger       *zap.Logger
	defaultStore string
	prefsPath    string
	openURL      func(string) error
	copyText     func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Query state
	stores      catalog.Stores
	storeFilter string
	term        string
	searching   bool
	search      textinput.Model
	spinner     spinner.Model

	// Data state
	session  *state.Session
	detail   *state.Detail
	selected int
	overlay  viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultStore := strings.TrimSpace(opts.DefaultStore)
	if defaultStore == "" {
		defaultStore = catalog.DefaultStore
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	openURL := opts.OpenURL
	if openURL == nil {
		openURL = openInBrowser
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	order, _ := catalog.ParseOrder(opts.SortName)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search game titles"
	search.CharLimit = 80

	return Model{
		ctx:          ctx,
		catalog:      opts.Catalog,
		logger:       logger,
		defaultStore: defaultStore,
		prefsPath:    prefsPath,
		openURL:      openURL,
		copyText:     copyText,
		theme:        GetTheme(opts.ThemeName),
		keys:         DefaultKeyMap(),
		stores:       catalog.FallbackStores(),
		search:       search,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		session:      state.NewSession(order),
		detail:       &state.Detail{},
		overlay:      viewport.New(0, 0),
	}
}

// Init implements tea.Model. It issues the initial listing and loads the
// store catalog.
func (m Model) Init() tea.Cmd {
	q := m.currentQuery()
	token := m.session.Begin(q)
	return tea.Batch(m.acquireCmd(token, q), m.loadStoresCmd(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(m.width-10, 10)
		m.clampSelection()
		m.refreshOverlay()
		return m, nil

	case resultsMsg:
		if m.session.Complete(msg.token, msg.deals, msg.err) {
			m.selected = 0
		} else {
			m.logger.Debug("stale results dropped",
				zap.String("op", "ui.results"),
				zap.Uint64("token", uint64(msg.token)),
			)
		}
		return m, nil

	case detailMsg:
		if m.detail.Resolve(msg.token, msg.detail, msg.err) {
			m.overlay.GotoTop()
			m.refreshOverlay()
		}
		return m, nil

	case storesMsg:
		if len(msg.stores) > 0 {
			m.stores = msg.stores
		}
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.detail.Snapshot().Loading {
			m.refreshOverlay()
		}
		return m, cmd
	}

	if m.searching {
		// Cursor blink
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
	if m.detail.IsOpen() {
		return m.renderOverlay()
	}
	return m.renderMain()
}

// handleKey routes keys to the search box, the overlay or the grid.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.detail.IsOpen() {
		return m.handleOverlayKey(msg)
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.term)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextStore):
		return m.changeStore(1)

	case key.Matches(msg, m.keys.PrevStore):
		return m.changeStore(-1)

	case key.Matches(msg, m.keys.CycleSort):
		m.session.SetOrder(m.session.Order().Next())
		m.selected = 0
		m.savePrefs()

	case key.Matches(msg, m.keys.Reset):
		m.term = ""
		m.storeFilter = ""
		m.search.SetValue("")
		m.session.Reset()
		m.savePrefs()
		return m.start(m.currentQuery())

	case key.Matches(msg, m.keys.LoadMore):
		m.session.LoadMore()

	case key.Matches(msg, m.keys.Retry):
		if q, ok := m.session.Retry(); ok {
			return m.start(q)
		}

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, 0)

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.searching = false
		m.search.Blur()
		m.term = strings.TrimSpace(m.search.Value())
		return m.start(m.currentQuery())
	case key.Matches(msg, m.keys.CancelInput):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.term)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.detail.Close()
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if token, gameID, ok := m.detail.Retry(); ok {
			m.refreshOverlay()
			return m, tea.Batch(m.detailCmd(token, gameID), m.spinner.Tick)
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenLink):
		if link := m.purchaseURL(); link != "" {
			return m, m.openLinkCmd(link)
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyLink):
		if link := m.purchaseURL(); link != "" {
			return m, m.copyLinkCmd(link)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	return m, cmd
}

// handleMouse closes the overlay on a click outside it and selects or opens
// cards on the grid.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if m.detail.IsOpen() {
		if !press {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		x, y, w, h := m.overlayBounds()
		if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
			m.detail.Close()
			m.notice = ""
		}
		return m, nil
	}
	if !press || m.showHelp || m.searching {
		return m, nil
	}
	idx, ok := m.cardAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if idx == m.selected {
		return m.openSelected()
	}
	m.selected = idx
	return m, nil
}

// currentQuery resolves the search box and store filter.
func (m Model) currentQuery() catalog.Query {
	return catalog.BuildQuery(m.term, m.storeFilter, m.defaultStore)
}

// start issues q, superseding any acquisition in flight.
func (m Model) start(q catalog.Query) (tea.Model, tea.Cmd) {
	token := m.session.Begin(q)
	m.selected = 0
	m.logger.Debug("query issued",
		zap.String("op", "ui.start"),
		zap.Stringer("query", q),
		zap.Uint64("token", uint64(token)),
	)
	return m, tea.Batch(m.acquireCmd(token, q), m.spinner.Tick)
}

// changeStore moves the store filter and replaces any search with a listing.
func (m Model) changeStore(step int) (tea.Model, tea.Cmd) {
	current := m.storeFilter
	if current == "" {
		current = m.defaultStore
	}
	m.storeFilter = m.stores.Cycle(current, step)
	m.term = ""
	m.search.SetValue("")
	return m.start(m.currentQuery())
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	visible := m.session.Snapshot().Visible
	if m.selected < 0 || m.selected >= len(visible) {
		return m, nil
	}
	deal := visible[m.selected]
	token := m.detail.Open(deal.ID, deal.Title)
	m.notice = ""
	m.overlay.GotoTop()
	m.refreshOverlay()
	return m, tea.Batch(m.detailCmd(token, deal.ID), m.spinner.Tick)
}

func (m *Model) moveSelection(dx, dy int) {
	n := len(m.session.Snapshot().Visible)
	if n == 0 {
		m.selected = 0
		return
	}
	next := m.selected + dx + dy*gridColumns(m.width)
	m.selected = min(max(next, 0), n-1)
}

func (m *Model) clampSelection() {
	n := len(m.session.Snapshot().Visible)
	m.selected = min(max(m.selected, 0), max(n-1, 0))
}

func (m Model) loading() bool {
	return m.session.Snapshot().Phase == state.PhaseLoading || m.detail.Snapshot().Loading
}

func (m Model) purchaseURL() string {
	snap := m.detail.Snapshot()
	if snap.Detail == nil {
		return ""
	}
	best, ok := snap.Detail.BestOffer()
	if !ok {
		return ""
	}
	return m.catalog.PurchaseURL(best.DealID)
}

func (m Model) savePrefs() {
	err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) {
		p.Theme = m.theme.Name
		p.Sort = string(m.session.Order())
	})
	if err != nil {
		m.logger.Warn("save prefs failed", zap.String("op", "ui.savePrefs"), zap.Error(err))
	}
}

// Messages

type resultsMsg struct {
	token state.Token
	deals []catalog.DealSummary
	err   error
}

type detailMsg struct {
	token  state.Token
	detail *catalog.GameDetail
	err    error
}

type storesMsg struct {
	stores catalog.Stores
}

type noticeMsg string

// Commands

func (m Model) acquireCmd(token state.Token, q catalog.Query) tea.Cmd {
	ctx, src := m.ctx, m.catalog
	return func() tea.Msg {
		deals, err := src.Acquire(ctx, q)
		return resultsMsg{token: token, deals: deals, err: err}
	}
}

func (m Model) detailCmd(token state.Token, gameID string) tea.Cmd {
	ctx, src := m.ctx, m.catalog
	return func() tea.Msg {
		detail, err := src.Detail(ctx, gameID)
		return detailMsg{token: token, detail: detail, err: err}
	}
}

func (m Model) loadStoresCmd() tea.Cmd {
	ctx, src := m.ctx, m.catalog
	return func() tea.Msg {
		// Stores returns the fallback catalog alongside any error.
		stores, _ := src.Stores(ctx)
		return storesMsg{stores: stores}
	}
}

func (m Model) openLinkCmd(link string) tea.Cmd {
	open, logger := m.openURL, m.logger
	return func() tea.Msg {
		if err := open(link); err != nil {
			logger.Warn("open link failed", zap.String("op", "ui.openLink"), zap.Error(err))
			return noticeMsg("Could not open browser: " + err.Error())
		}
		return noticeMsg("Opened in browser")
	}
}

func (m Model) copyLinkCmd(link string) tea.Cmd {
	copyText, logger := m.copyText, m.logger
	return func() tea.Msg {
		if err := copyText(link); err != nil {
			logger.Warn("copy link failed", zap.String("op", "ui.copyLink"), zap.Error(err))
			return noticeMsg("Could not copy link: " + err.Error())
		}
		return noticeMsg("Link copied")
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
