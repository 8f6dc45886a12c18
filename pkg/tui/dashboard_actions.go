package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/2extndd/MRS-sub002/internal/format"
	"github.com/2extndd/MRS-sub002/internal/poller"
)

// Post-action refresh delays, matching the dashboard's reload delays.
const (
	refreshAfterScan  = 2 * time.Second
	refreshAfterQuery = 1 * time.Second
	refreshAfterClear = 2 * time.Second
)

// refreshAll reloads stats, items and queries. Failures are logged only; a
// failed reload keeps showing the previous snapshot.
func (m *DashboardModel) refreshAll() tea.Cmd {
	client := m.client
	logger := m.logger

	return tea.Batch(
		func() tea.Msg {
			stats, err := client.Stats(context.Background())
			if err != nil {
				logger.Warn("stats refresh failed", zap.Error(err))
				return nil
			}
			return statsMsg{stats: stats}
		},
		func() tea.Msg {
			items, err := client.RecentItems(context.Background())
			if err != nil {
				logger.Warn("items refresh failed", zap.Error(err))
				return nil
			}
			if len(items) > poller.MaxItems {
				items = items[:poller.MaxItems]
			}
			return itemsMsg{items: items}
		},
		func() tea.Msg {
			queries, err := client.Queries(context.Background())
			if err != nil {
				logger.Warn("queries refresh failed", zap.Error(err))
				return nil
			}
			return queriesMsg{queries: queries}
		},
	)
}

func (m *DashboardModel) testSearchCmd(url string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionTest}

		result, err := client.TestSearch(context.Background(), url)
		if err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Test failed: " + err.Error()})
			return msg
		}

		if result.Valid {
			var found int64
			var samples []string
			if result.TestResults != nil {
				found = result.TestResults.ItemsFound
				samples = result.TestResults.SampleTitles
			}
			msg.alerts = append(msg.alerts, showAlertMsg{
				AlertSuccess,
				fmt.Sprintf("URL is valid: %d items found", found),
			})
			if len(samples) > 0 {
				msg.alerts = append(msg.alerts, showAlertMsg{
					AlertInfo,
					"Sample titles: " + strings.Join(samples, ", "),
				})
			}
		} else {
			text := result.Error
			if text == "" {
				text = "Invalid search URL"
			}
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, text})
		}

		// test_error is reported regardless of validity.
		if result.TestError != "" {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertWarning, "Test warning: " + result.TestError})
		}
		return msg
	}
}

func (m *DashboardModel) forceScanCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionScan}

		newItems, err := client.ForceScan(context.Background())
		if err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Scan failed: " + err.Error()})
			return msg
		}
		msg.alerts = append(msg.alerts, showAlertMsg{
			AlertSuccess,
			fmt.Sprintf("Scan complete: %d new items", newItems),
		})
		msg.refreshAfter = refreshAfterScan
		return msg
	}
}

func (m *DashboardModel) testNotificationCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionNotify}

		if err := client.TestNotification(context.Background()); err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Notification failed: " + err.Error()})
			return msg
		}
		msg.alerts = append(msg.alerts, showAlertMsg{AlertSuccess, "Test notification sent"})
		return msg
	}
}

func (m *DashboardModel) deleteQueryCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionDelete}

		if err := client.DeleteQuery(context.Background(), id); err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Delete failed: " + err.Error()})
			return msg
		}
		msg.alerts = append(msg.alerts, showAlertMsg{AlertSuccess, "Query deleted"})
		msg.refreshAfter = refreshAfterQuery
		return msg
	}
}

func (m *DashboardModel) toggleQueryCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionToggle}

		if err := client.ToggleQuery(context.Background(), id); err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Toggle failed: " + err.Error()})
			return msg
		}
		msg.alerts = append(msg.alerts, showAlertMsg{AlertSuccess, "Query toggled"})
		msg.refreshAfter = refreshAfterQuery
		return msg
	}
}

func (m *DashboardModel) clearAllCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionClear}

		message, err := client.ClearAllItems(context.Background())
		if err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Clear failed: " + err.Error()})
			return msg
		}
		if message == "" {
			message = "All items cleared"
		}
		msg.alerts = append(msg.alerts, showAlertMsg{AlertSuccess, message})
		msg.refreshAfter = refreshAfterClear
		return msg
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		msg := actionResultMsg{kind: actionCopy}

		if err := clipboard.WriteAll(text); err != nil {
			msg.alerts = append(msg.alerts, showAlertMsg{AlertDanger, "Copy failed: " + err.Error()})
			return msg
		}
		msg.alerts = append(msg.alerts, showAlertMsg{AlertSuccess, "Stats copied to clipboard"})
		return msg
	}
}

// statsSummary renders the current counters as plain text for the clipboard.
func (m *DashboardModel) statsSummary() string {
	if m.stats == nil {
		return "MRS stats: no snapshot yet"
	}
	return fmt.Sprintf(
		"MRS stats: %s items, %s active searches, %s API requests, uptime %s",
		format.Count(m.stats.Database.TotalItems),
		format.Count(m.stats.Database.ActiveSearches),
		format.Count(m.stats.TotalAPIRequests),
		m.stats.UptimeFormatted,
	)
}
