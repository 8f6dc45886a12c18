package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// alertTTL is how long an alert stays up before dismissing itself.
const alertTTL = 5 * time.Second

// AlertLevel selects the severity styling of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertSuccess
	AlertWarning
	AlertDanger
)

func (l AlertLevel) color() string {
	switch l {
	case AlertSuccess:
		return ColorSuccess
	case AlertWarning:
		return ColorWarning
	case AlertDanger:
		return ColorDanger
	default:
		return ColorInfo
	}
}

func (l AlertLevel) label() string {
	switch l {
	case AlertSuccess:
		return "OK"
	case AlertWarning:
		return "WARN"
	case AlertDanger:
		return "FAIL"
	default:
		return "INFO"
	}
}

// showAlertMsg asks the app to display an alert.
type showAlertMsg struct {
	level AlertLevel
	text  string
}

// dismissAlertMsg removes the alert with the matching sequence number.
// Stale timers from replaced alerts carry old numbers and are ignored.
type dismissAlertMsg struct {
	seq int
}

func showAlert(level AlertLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return showAlertMsg{level: level, text: text}
	}
}

// AlertModel renders at most one transient alert at a time. Showing a new
// alert replaces the current one; each alert removes itself after alertTTL.
type AlertModel struct {
	active bool
	level  AlertLevel
	text   string
	seq    int
	width  int
}

// NewAlert creates an empty alert model.
func NewAlert() *AlertModel {
	return &AlertModel{}
}

// SetWidth sets the wrap width for alert text.
func (m *AlertModel) SetWidth(w int) {
	m.width = w
}

// Show replaces any displayed alert and schedules the new one's dismissal.
func (m *AlertModel) Show(level AlertLevel, text string) tea.Cmd {
	m.active = true
	m.level = level
	m.text = text
	m.seq++

	seq := m.seq
	return tea.Tick(alertTTL, func(time.Time) tea.Msg {
		return dismissAlertMsg{seq: seq}
	})
}

// Dismiss removes the current alert immediately.
func (m *AlertModel) Dismiss() {
	m.active = false
}

// Update handles dismissal timers.
func (m *AlertModel) Update(msg tea.Msg) {
	if dismiss, ok := msg.(dismissAlertMsg); ok && dismiss.seq == m.seq {
		m.active = false
	}
}

// Active reports whether an alert is displayed.
func (m *AlertModel) Active() bool {
	return m.active
}

// View renders the alert bar, or nothing when inactive.
func (m *AlertModel) View() string {
	if !m.active {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	text := m.text
	if width > 12 {
		text = wordwrap.String(text, width-12)
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(m.level.color())).
		Padding(0, 1)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Render(" (x to dismiss)")

	return style.Render(m.level.label()+" "+text) + hint
}
