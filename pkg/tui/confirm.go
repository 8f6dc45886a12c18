package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmConfig holds the configuration for a confirmation prompt
type ConfirmConfig struct {
	Message     string // Main confirmation message
	Warning     string // Optional warning line (shown in orange)
	Destructive bool   // If true, Yes is red, No is green
}

// ConfirmModel handles yes/no confirmation prompts. Actions that require a
// second confirmation show it from the first prompt's onConfirm.
type ConfirmModel struct {
	active    bool
	config    ConfirmConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirm creates a new confirmation model
func NewConfirm() *ConfirmModel {
	return &ConfirmModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmModel) Show(config ConfirmConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation prompt
func (m *ConfirmModel) View() string {
	if !m.active {
		return ""
	}

	var yesStyle, noStyle lipgloss.Style
	if m.config.Destructive {
		yesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true)
		noStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	} else {
		yesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
		noStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNormal)).Bold(true)
	}

	options := fmt.Sprintf("%s / %s", yesStyle.Render("y"), noStyle.Render("n"))
	line := fmt.Sprintf("%s %s", m.config.Message, options)

	if m.config.Warning != "" {
		warning := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render(m.config.Warning)
		line = warning + "\n" + line
	}

	return line
}
