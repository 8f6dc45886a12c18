package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for the focused pane
	ColorInactive = "240" // Gray for unfocused panes
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for failures and destructive actions
	ColorSuccess  = "28"  // Green for success
	ColorInfo     = "39"  // Blue for informational alerts
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
)

// Common styles
var (
	// Pane borders
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	// Stat cards
	StatCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 2).
			Align(lipgloss.Center)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	// Refreshed counters are briefly rendered in the active color, the
	// terminal stand-in for the fade transition.
	StatRefreshedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorActive))

	// Headers
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive)).
			PaddingLeft(1)

	PaneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	// Item cards
	ItemTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite))

	ItemPriceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	ItemMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDark)).
			Background(lipgloss.Color(ColorWarning)).
			Padding(0, 1)

	// Queries pane
	SelectedQueryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	NormalQueryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal))

	DisabledQueryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Strikethrough(true)

	// Help bar
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			PaddingLeft(1)
)
