package tui

import (
	"time"

	"github.com/2extndd/MRS-sub002/internal/api"
)

// Messages for communication between the pollers, actions and views

// statsMsg carries a fresh stats snapshot into the dashboard.
type statsMsg struct {
	stats *api.StatsSnapshot
}

// statsSettleMsg ends the brief refresh highlight on the stat counters.
type statsSettleMsg struct{}

// itemsMsg replaces the recent-items pane content.
type itemsMsg struct {
	items []api.Item
}

// queriesMsg replaces the saved-queries pane content.
type queriesMsg struct {
	queries []api.Query
}

// refreshMsg forces an immediate reload of stats, items and queries. It is
// the client-side analogue of the dashboard page reloading after an action.
type refreshMsg struct{}

// actionResultMsg reports a finished one-shot action. The running state is
// always restored; alerts are shown in order (the last one stays visible);
// a non-zero refreshAfter schedules a forced refresh.
type actionResultMsg struct {
	kind         actionKind
	alerts       []showAlertMsg
	refreshAfter time.Duration
}
