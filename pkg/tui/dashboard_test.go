package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2extndd/MRS-sub002/internal/api"
)

// newTestDashboard points a dashboard at a backend that counts every request
// it receives, so tests can assert that declined or invalid actions issue
// zero requests.
func newTestDashboard(t *testing.T) (*DashboardModel, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(server.Close)

	client := api.New(nil, server.URL, time.Second)
	m := NewDashboard(client, nil, "JPY")
	m.SetSize(120, 40)
	return m, &requests
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestEmptyURLTestWarnsWithoutRequest(t *testing.T) {
	m, requests := newTestDashboard(t)

	m.Update(keyMsg("t"))
	if !m.inputOpen {
		t.Fatal("t did not open the URL input")
	}
	if !m.Typing() {
		t.Fatal("focus guard not raised while input open")
	}

	cmd := m.Update(keyMsg("enter"))
	msg := runCmd(t, cmd)
	alert, ok := msg.(showAlertMsg)
	if !ok {
		t.Fatalf("expected showAlertMsg, got %T", msg)
	}
	if alert.level != AlertWarning {
		t.Errorf("alert level = %v, want warning", alert.level)
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("empty URL issued %d requests, want 0", got)
	}
	if m.running != actionNone {
		t.Error("empty URL put an action in flight")
	}
}

func TestDeclinedDeleteIssuesNoRequest(t *testing.T) {
	m, requests := newTestDashboard(t)
	m.Update(queriesMsg{queries: []api.Query{{ID: 1, Name: "figures", Enabled: true}}})

	m.Update(keyMsg("d"))
	if !m.confirm.Active() {
		t.Fatal("delete did not prompt for confirmation")
	}
	m.Update(keyMsg("n"))

	if got := requests.Load(); got != 0 {
		t.Errorf("declined delete issued %d requests, want 0", got)
	}
	if m.running != actionNone {
		t.Error("declined delete started an action")
	}
}

func TestClearAllNeedsTwoConfirmations(t *testing.T) {
	m, requests := newTestDashboard(t)

	m.Update(keyMsg("D"))
	if !m.confirm.Active() {
		t.Fatal("clear all did not prompt")
	}

	// First yes only opens the final warning.
	m.Update(keyMsg("y"))
	if !m.confirm.Active() {
		t.Fatal("first confirmation did not chain into the final warning")
	}
	if got := requests.Load(); got != 0 {
		t.Fatalf("request issued before final confirmation: %d", got)
	}

	// Declining the final warning aborts entirely.
	m.Update(keyMsg("n"))
	if m.confirm.Active() {
		t.Error("confirmation still active after decline")
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("declined clear issued %d requests, want 0", got)
	}
}

func TestClearAllRunsAfterBothConfirmations(t *testing.T) {
	m, _ := newTestDashboard(t)

	m.Update(keyMsg("D"))
	m.Update(keyMsg("y"))
	cmd := m.confirm.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("final confirmation produced no action")
	}
	if m.running != actionClear {
		t.Errorf("running = %v, want actionClear", m.running)
	}
}

func TestStatsUpdateAndSettle(t *testing.T) {
	m, _ := newTestDashboard(t)

	cmd := m.Update(statsMsg{stats: &api.StatsSnapshot{
		Database:         api.DatabaseStats{TotalItems: 5, ActiveSearches: 2},
		TotalAPIRequests: 9,
		UptimeFormatted:  "3h 2m",
	}})
	if cmd == nil {
		t.Fatal("stats update did not schedule the settle timer")
	}
	if !m.statsFresh {
		t.Error("counters not highlighted after refresh")
	}

	view := m.statsView()
	for _, want := range []string{"5", "2", "9", "3h 2m"} {
		if !strings.Contains(view, want) {
			t.Errorf("stats view missing %q:\n%s", want, view)
		}
	}

	m.Update(statsSettleMsg{})
	if m.statsFresh {
		t.Error("highlight not cleared after settle")
	}
}

func TestActionKeysDisabledWhileRunning(t *testing.T) {
	m, requests := newTestDashboard(t)
	m.running = actionScan

	for _, key := range []string{"s", "n", "t", "D", "c"} {
		if cmd := m.Update(keyMsg(key)); cmd != nil {
			t.Errorf("key %q accepted while an action is in flight", key)
		}
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("disabled keys issued %d requests", got)
	}
}

func TestFinishActionRestoresState(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.Update(keyMsg("t"))
	m.running = actionTest

	cmd := m.Update(actionResultMsg{
		kind:   actionTest,
		alerts: []showAlertMsg{{AlertSuccess, "URL is valid: 3 items found"}},
	})
	if m.running != actionNone {
		t.Error("running state not restored")
	}
	if m.inputOpen {
		t.Error("URL input left open after test completed")
	}
	if m.Typing() {
		t.Error("focus guard left raised after test completed")
	}
	if cmd == nil {
		t.Error("result alerts were not dispatched")
	}
}

func TestItemCardRendering(t *testing.T) {
	m, _ := newTestDashboard(t)

	long := strings.Repeat("x", 50)
	card := m.itemCard(api.Item{Title: long, Price: 1000, SearchName: "figures"})
	if !strings.Contains(card, long[:40]+"...") {
		t.Errorf("long title not truncated: %q", card)
	}
	if !strings.Contains(card, "1,000 JPY") {
		t.Errorf("price not formatted: %q", card)
	}
	if !strings.Contains(card, "figures") {
		t.Errorf("search badge missing: %q", card)
	}

	card = m.itemCard(api.Item{Title: "<script>alert(1)</script>", Price: 0})
	if strings.Contains(card, "<script>") {
		t.Errorf("item title not escaped: %q", card)
	}
	if !strings.Contains(card, "Price N/A") {
		t.Errorf("zero price not rendered as N/A: %q", card)
	}
	if !strings.Contains(card, placeholderImage) {
		t.Errorf("missing image placeholder: %q", card)
	}
}

func TestQueryCursorMovement(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.Update(queriesMsg{queries: []api.Query{
		{ID: 1, Name: "a", Enabled: true},
		{ID: 2, Name: "b", Enabled: false},
	}})

	m.Update(keyMsg("down"))
	if q, _ := m.selectedQuery(); q.ID != 2 {
		t.Errorf("cursor did not move down, selected %d", q.ID)
	}
	m.Update(keyMsg("down"))
	if q, _ := m.selectedQuery(); q.ID != 2 {
		t.Error("cursor moved past the last query")
	}
	m.Update(keyMsg("up"))
	if q, _ := m.selectedQuery(); q.ID != 1 {
		t.Error("cursor did not move back up")
	}

	// Shrinking the list clamps the cursor.
	m.cursor = 1
	m.Update(queriesMsg{queries: []api.Query{{ID: 1, Name: "a"}}})
	if m.cursor != 0 {
		t.Errorf("cursor not clamped, got %d", m.cursor)
	}
}
