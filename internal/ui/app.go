package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ereft/gojo/internal/detail"
	"github.com/ereft/gojo/internal/ereft"
	"github.com/ereft/gojo/internal/prefs"
	"github.com/ereft/gojo/internal/session"
)

// View represents the current active screen.
type View int

const (
	ViewBrowse View = iota
	ViewDetail
	ViewSignIn
)

// Options configures the UI.
type Options struct {
	Context context.Context
	API     ereft.API
	Session session.Session
	Creds   session.CredentialProvider

	// ListingID opens the app directly on one listing's detail screen.
	ListingID string

	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	api        ereft.API
	loader     *detail.Loader
	controller *detail.Controller
	sess       session.Session
	prefsPath  string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	spin        spinner.Model

	// Browse state
	listings    []ereft.Property
	listTotal   int
	listPage    int
	listHasNext bool
	listErr     string
	listLoading bool
	selectedRow int

	// Detail state
	detail        detail.Model
	busy          bool
	confirmDelete bool
	notice        string
	noticeIsError bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Styles().Accent

	m := Model{
		ctx:         ctx,
		api:         opts.API,
		loader:      detail.NewLoader(opts.API),
		sess:        opts.Session,
		prefsPath:   prefsPath,
		theme:       theme,
		spin:        sp,
		listPage:    1,
		currentView: ViewBrowse,
	}
	m.controller = detail.NewController(opts.API, opts.Creds, noopPrompt{})

	if opts.ListingID != "" {
		m.currentView = ViewDetail
		m.detail = detail.NewModel(opts.ListingID)
	} else {
		m.listLoading = true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
	}
	if m.currentView == ViewDetail {
		cmds = append(cmds, m.loadPropertyCmd(m.detail.ListingID))
	} else {
		cmds = append(cmds, m.loadListingsCmd(m.listPage))
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
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case listingsMsg:
		m.listLoading = false
		if msg.err != nil {
			m.listErr = "Failed to load properties"
			return m, nil
		}
		m.listErr = ""
		m.listings = msg.page.Results
		m.listTotal = msg.page.Count
		m.listHasNext = msg.page.HasNext()
		if m.selectedRow >= len(m.listings) {
			m.selectedRow = 0
		}
		return m, nil

	case propertyLoadedMsg:
		// A stale result for a listing the viewer already left is dropped.
		if msg.id != m.detail.ListingID {
			return m, nil
		}
		if msg.err != nil {
			m.detail.SetError(msg.err.Error())
			return m, nil
		}
		m.detail.SetLoaded(msg.property)
		return m, nil

	case favoriteToggledMsg:
		m.busy = false
		m.applyNotices(msg.notices, msg.outcome.Err != nil)
		if msg.outcome.SignIn {
			m.currentView = ViewSignIn
			return m, nil
		}
		if msg.outcome.Err == nil {
			m.detail.SetFavorite(msg.outcome.Favorite)
		}
		return m, nil

	case deleteDoneMsg:
		m.busy = false
		m.applyNotices(msg.notices, msg.outcome.Err != nil)
		if msg.outcome.SignIn {
			m.currentView = ViewSignIn
			return m, nil
		}
		if msg.outcome.Deleted {
			return m.gotoBrowse()
		}
		return m, nil
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
	if m.confirmDelete {
		return m.renderDeleteConfirm()
	}

	switch m.currentView {
	case ViewBrowse:
		return m.renderBrowse()
	case ViewDetail:
		return m.renderDetail()
	case ViewSignIn:
		return m.renderSignIn()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}
	if m.confirmDelete {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = m.theme.Styles().Accent
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil
	}

	switch m.currentView {
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewSignIn:
		return m.handleSignInKey(msg)
	}

	return m, nil
}

// gotoBrowse returns to the listing collection and refreshes it.
func (m Model) gotoBrowse() (tea.Model, tea.Cmd) {
	m.currentView = ViewBrowse
	m.confirmDelete = false
	m.listLoading = true
	return m, m.loadListingsCmd(m.listPage)
}

// openDetail starts a fresh visit for the selected listing.
func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	m.currentView = ViewDetail
	m.notice = ""
	m.detail.Reset(id)
	return m, m.loadPropertyCmd(id)
}

func (m *Model) applyNotices(notices []string, isError bool) {
	if len(notices) == 0 {
		return
	}
	m.notice = notices[len(notices)-1]
	m.noticeIsError = isError
}

// Messages

type listingsMsg struct {
	page *ereft.PropertyPage
	err  error
}

type propertyLoadedMsg struct {
	id       string
	property *ereft.Property
	err      error
}

type favoriteToggledMsg struct {
	outcome detail.ToggleOutcome
	notices []string
}

type deleteDoneMsg struct {
	outcome detail.DeleteOutcome
	notices []string
}

// Commands

func (m Model) loadListingsCmd(page int) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		result, err := api.FetchProperties(ctx, page)
		return listingsMsg{page: result, err: err}
	}
}

func (m Model) loadPropertyCmd(id string) tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		prop, err := loader.Load(ctx, id)
		return propertyLoadedMsg{id: id, property: prop, err: err}
	}
}

func (m Model) toggleFavoriteCmd() tea.Cmd {
	ctx, sess := m.ctx, m.sess
	id, current := m.detail.ListingID, m.detail.Favorite
	controller := m.controller
	return func() tea.Msg {
		prompt := &capturedPrompt{}
		outcome := controller.WithPrompt(prompt).ToggleFavorite(ctx, sess, id, current)
		return favoriteToggledMsg{outcome: outcome, notices: prompt.notices}
	}
}

// deleteListingCmd runs after the viewer answered the confirm modal; the
// prompt replays that answer to the controller.
func (m Model) deleteListingCmd(confirmed bool) tea.Cmd {
	ctx, sess, id := m.ctx, m.sess, m.detail.ListingID
	controller := m.controller
	return func() tea.Msg {
		prompt := &capturedPrompt{confirmed: confirmed}
		outcome := controller.WithPrompt(prompt).DeleteListing(ctx, sess, id)
		return deleteDoneMsg{outcome: outcome, notices: prompt.notices}
	}
}

// Run starts the Bubble Tea program and blocks until exit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
