package tui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/2extndd/MRS-sub002/internal/api"
)

// statsSettleDelay is how long refreshed counters keep their highlight.
const statsSettleDelay = 150 * time.Millisecond

// actionKind identifies the one-shot action currently in flight. Only one
// action runs at a time; action keys are ignored while one is running, the
// same discipline as disabling a button around its request.
type actionKind int

const (
	actionNone actionKind = iota
	actionTest
	actionScan
	actionNotify
	actionDelete
	actionToggle
	actionClear
	actionCopy
)

func (k actionKind) label() string {
	switch k {
	case actionTest:
		return "Testing URL"
	case actionScan:
		return "Running search"
	case actionNotify:
		return "Sending test notification"
	case actionDelete:
		return "Deleting query"
	case actionToggle:
		return "Toggling query"
	case actionClear:
		return "Clearing items"
	case actionCopy:
		return "Copying"
	default:
		return ""
	}
}

// DashboardModel renders the stat cards, recent items and saved queries,
// and runs the one-shot actions against the backend.
type DashboardModel struct {
	client   *api.Client
	logger   *zap.Logger
	currency string

	stats      *api.StatsSnapshot
	statsFresh bool
	items      []api.Item
	queries    []api.Query
	cursor     int

	urlInput  textinput.Model
	inputOpen bool
	typing    atomic.Bool

	spin    spinner.Model
	running actionKind

	confirm *ConfirmModel

	width  int
	height int
}

// NewDashboard creates the dashboard model.
func NewDashboard(client *api.Client, logger *zap.Logger, currency string) *DashboardModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "https://jp.mercari.com/search?keyword=..."
	input.CharLimit = 512
	input.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &DashboardModel{
		client:   client,
		logger:   logger,
		currency: currency,
		urlInput: input,
		spin:     s,
		confirm:  NewConfirm(),
	}
}

// Init loads the initial snapshots.
func (m *DashboardModel) Init() tea.Cmd {
	return m.refreshAll()
}

// Typing reports whether the URL input has focus. The pollers call it from
// their own goroutines, which is why it is backed by an atomic.
func (m *DashboardModel) Typing() bool {
	return m.typing.Load()
}

// Busy reports whether the dashboard is capturing keys (input or prompt).
func (m *DashboardModel) Busy() bool {
	return m.inputOpen || m.confirm.Active()
}

// SetSize stores the window size for rendering.
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 20 {
		m.urlInput.Width = width - 20
	}
}

// Update handles dashboard messages and returns follow-up commands.
func (m *DashboardModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.running == actionNone {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case statsMsg:
		m.stats = msg.stats
		m.statsFresh = true
		return tea.Tick(statsSettleDelay, func(time.Time) tea.Msg {
			return statsSettleMsg{}
		})

	case statsSettleMsg:
		m.statsFresh = false
		return nil

	case itemsMsg:
		m.items = msg.items
		return nil

	case queriesMsg:
		m.queries = msg.queries
		if m.cursor >= len(m.queries) {
			m.cursor = len(m.queries) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return nil

	case refreshMsg:
		return m.refreshAll()

	case actionResultMsg:
		return m.finishAction(msg)
	}

	return nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	if m.inputOpen {
		return m.handleInputKey(msg)
	}

	// An in-flight action disables the action keys until it completes.
	if m.running != actionNone {
		return nil
	}

	switch msg.String() {
	case "t":
		m.inputOpen = true
		m.typing.Store(true)
		return m.urlInput.Focus()

	case "s":
		return m.start(actionScan, m.forceScanCmd())

	case "n":
		return m.start(actionNotify, m.testNotificationCmd())

	case "d":
		q, ok := m.selectedQuery()
		if !ok {
			return showAlert(AlertWarning, "No query selected")
		}
		m.confirm.Show(ConfirmConfig{
			Message:     fmt.Sprintf("Delete query %q?", q.Name),
			Destructive: true,
		}, func() tea.Cmd {
			return m.start(actionDelete, m.deleteQueryCmd(q.ID))
		}, nil)
		return nil

	case " ":
		q, ok := m.selectedQuery()
		if !ok {
			return showAlert(AlertWarning, "No query selected")
		}
		return m.start(actionToggle, m.toggleQueryCmd(q.ID))

	case "D":
		return m.confirmClearAll()

	case "c":
		return m.start(actionCopy, copyCmd(m.statsSummary()))

	case "r":
		return m.refreshAll()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil

	case "down", "j":
		if m.cursor < len(m.queries)-1 {
			m.cursor++
		}
		return nil
	}

	return nil
}

func (m *DashboardModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	// The running test disables the input until it completes.
	if m.running != actionNone {
		return nil
	}

	switch msg.String() {
	case "enter":
		url := strings.TrimSpace(m.urlInput.Value())
		if url == "" {
			return showAlert(AlertWarning, "Enter a search URL to test")
		}
		return m.start(actionTest, m.testSearchCmd(url))

	case "esc":
		m.closeInput()
		return nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return cmd
}

func (m *DashboardModel) closeInput() {
	m.inputOpen = false
	m.urlInput.Blur()
	m.typing.Store(false)
}

// confirmClearAll runs the two-stage confirmation: first the consequences,
// then a final warning. Declining either stage aborts with no request.
func (m *DashboardModel) confirmClearAll() tea.Cmd {
	m.confirm.Show(ConfirmConfig{
		Message:     "Clear ALL stored items?",
		Warning:     "Every discovered item will be deleted. Saved queries are kept.",
		Destructive: true,
	}, func() tea.Cmd {
		m.confirm.Show(ConfirmConfig{
			Message:     "Last warning: really delete everything?",
			Destructive: true,
		}, func() tea.Cmd {
			return m.start(actionClear, m.clearAllCmd())
		}, nil)
		return nil
	}, nil)
	return nil
}

// start marks an action as in flight and kicks off its spinner and request.
func (m *DashboardModel) start(kind actionKind, cmd tea.Cmd) tea.Cmd {
	m.running = kind
	return tea.Batch(m.spin.Tick, cmd)
}

// finishAction restores the idle state and fans out the result's alerts,
// in order, plus the delayed refresh when the action asked for one.
func (m *DashboardModel) finishAction(msg actionResultMsg) tea.Cmd {
	m.running = actionNone
	if msg.kind == actionTest {
		m.closeInput()
	}

	cmds := make([]tea.Cmd, 0, len(msg.alerts)+1)
	for _, alert := range msg.alerts {
		cmds = append(cmds, showAlert(alert.level, alert.text))
	}
	if msg.refreshAfter > 0 {
		cmds = append(cmds, tea.Tick(msg.refreshAfter, func(time.Time) tea.Msg {
			return refreshMsg{}
		}))
	}
	return tea.Sequence(cmds...)
}

func (m *DashboardModel) selectedQuery() (api.Query, bool) {
	if m.cursor < 0 || m.cursor >= len(m.queries) {
		return api.Query{}, false
	}
	return m.queries[m.cursor], true
}
