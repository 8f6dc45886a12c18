package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2extndd/MRS-sub002/internal/api"
	"github.com/2extndd/MRS-sub002/internal/format"
)

// placeholderImage stands in when a listing has no image URL.
const placeholderImage = "(no image)"

// View renders the dashboard.
func (m *DashboardModel) View() string {
	var sections []string

	sections = append(sections, HeaderStyle.Render("MRS · MercariSearcher"))
	sections = append(sections, m.statsView())

	if m.inputOpen {
		sections = append(sections, m.inputView())
	}
	if m.confirm.Active() {
		sections = append(sections, m.confirm.View())
	}

	sections = append(sections, lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.itemsView(),
		m.queriesView(),
	))
	sections = append(sections, m.helpView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) statsView() string {
	valueStyle := StatValueStyle
	if m.statsFresh {
		valueStyle = StatRefreshedStyle
	}

	totalItems, activeSearches, apiRequests, uptime := "—", "—", "—", "—"
	if m.stats != nil {
		totalItems = format.Count(m.stats.Database.TotalItems)
		activeSearches = format.Count(m.stats.Database.ActiveSearches)
		apiRequests = format.Count(m.stats.TotalAPIRequests)
		if m.stats.UptimeFormatted != "" {
			uptime = m.stats.UptimeFormatted
		}
	}

	card := func(label, value string) string {
		return StatCardStyle.Render(
			StatLabelStyle.Render(label) + "\n" + valueStyle.Render(value),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		card("Total items", totalItems),
		card("Active searches", activeSearches),
		card("API requests", apiRequests),
		card("Uptime", uptime),
	)
}

func (m *DashboardModel) inputView() string {
	return ActiveBorderStyle.Render(
		PaneTitleStyle.Render("Test search URL") + "\n" + m.urlInput.View() +
			"\n" + HelpStyle.Render("enter to test • esc to close"),
	)
}

func (m *DashboardModel) itemsView() string {
	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render(fmt.Sprintf("Recent items (%d)", len(m.items))))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(ItemMetaStyle.Render("No items yet"))
	}

	visible := m.visibleItemRows()
	for i, item := range m.items {
		if i >= visible {
			b.WriteString(ItemMetaStyle.Render(fmt.Sprintf("… and %d more", len(m.items)-visible)))
			break
		}
		b.WriteString(m.itemCard(item))
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	return InactiveBorderStyle.Width(m.itemsPaneWidth()).Render(b.String())
}

func (m *DashboardModel) itemCard(item api.Item) string {
	title := ItemTitleStyle.Render(format.EscapeHTML(format.TruncateTitle(item.Title)))
	if item.SearchName != "" {
		title += " " + BadgeStyle.Render(format.EscapeHTML(item.SearchName))
	}

	image := item.ImageURL
	if image == "" {
		image = placeholderImage
	}
	meta := ItemPriceStyle.Render(format.PriceIn(item.Price, m.currency)) +
		ItemMetaStyle.Render("  "+format.EscapeHTML(image))

	return title + "\n" + meta
}

func (m *DashboardModel) visibleItemRows() int {
	if m.height <= 0 {
		return len(m.items)
	}
	// Two lines per card plus chrome around the pane.
	rows := (m.height - 12) / 2
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *DashboardModel) itemsPaneWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width * 2 / 3
	if w < 40 {
		w = 40
	}
	return w - 2
}

func (m *DashboardModel) queriesView() string {
	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render(fmt.Sprintf("Saved queries (%d)", len(m.queries))))
	b.WriteString("\n")

	if len(m.queries) == 0 {
		b.WriteString(ItemMetaStyle.Render("No saved queries"))
	}

	for i, q := range m.queries {
		marker := "  "
		style := NormalQueryStyle
		if !q.Enabled {
			style = DisabledQueryStyle
		}
		if i == m.cursor {
			marker = "> "
			style = SelectedQueryStyle
		}

		state := "[ ]"
		if q.Enabled {
			state = "[x]"
		}

		name := format.EscapeHTML(q.Name)
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, state, style.Render(name),
			ItemMetaStyle.Render(fmt.Sprintf("(%d items)", q.ItemCount))))
	}

	return InactiveBorderStyle.Width(m.queriesPaneWidth()).Render(b.String())
}

func (m *DashboardModel) queriesPaneWidth() int {
	if m.width <= 0 {
		return 30
	}
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w - 2
}

func (m *DashboardModel) helpView() string {
	if m.running != actionNone {
		return HelpStyle.Render(m.spin.View() + " " + m.running.label() + "…")
	}
	return HelpStyle.Render(
		"t test url • s scan • n notify • ↑/↓ select • space toggle • d delete • D clear all • c copy • r refresh • x dismiss • q quit",
	)
}
