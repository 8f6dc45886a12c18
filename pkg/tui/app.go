package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/2extndd/MRS-sub002/internal/api"
	"github.com/2extndd/MRS-sub002/internal/config"
	"github.com/2extndd/MRS-sub002/internal/poller"
)

// App is the root model: the dashboard plus the alert bar, with the poll
// subscriptions attached so they can be torn down on exit.
type App struct {
	client    *api.Client
	logger    *zap.Logger
	cfg       config.Config
	dashboard *DashboardModel
	alert     *AlertModel
	subs      []*poller.Subscription
	width     int
	height    int
}

// NewApp wires the dashboard once at startup.
func NewApp(client *api.Client, logger *zap.Logger, cfg config.Config) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		client:    client,
		logger:    logger,
		cfg:       cfg,
		dashboard: NewDashboard(client, logger, cfg.Currency),
		alert:     NewAlert(),
	}
}

// StartPolling begins the stats and recent-items subscriptions, delivering
// snapshots into the program via send. Call StopPolling when the program
// exits.
func (a *App) StartPolling(send func(tea.Msg)) {
	a.subs = append(a.subs,
		poller.Stats(a.client, a.logger, a.cfg.StatsInterval, a.dashboard.Typing,
			func(stats *api.StatsSnapshot) {
				send(statsMsg{stats: stats})
			}),
		poller.RecentItems(a.client, a.logger, a.cfg.ItemsInterval, a.dashboard.Typing,
			func(items []api.Item) {
				send(itemsMsg{items: items})
			}),
	)
}

// StopPolling cancels every subscription and waits for them to exit.
func (a *App) StopPolling() {
	for _, sub := range a.subs {
		sub.Stop()
	}
	a.subs = nil
}

func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.alert.SetWidth(msg.Width)
		a.dashboard.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if !a.dashboard.Busy() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "x":
				a.alert.Dismiss()
				return a, nil
			}
		}

	case showAlertMsg:
		return a, a.alert.Show(msg.level, msg.text)

	case dismissAlertMsg:
		a.alert.Update(msg)
		return a, nil
	}

	return a, a.dashboard.Update(msg)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.dashboard.View()
	if a.alert.Active() {
		content = lipgloss.JoinVertical(lipgloss.Left, a.alert.View(), content)
	}
	return content
}
