package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/franpass87/bookwidget/internal/pricing"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateEditDate || m.state == StateEditCounts {
		return m.form.View()
	}

	date := m.selection.Date
	if date == "" {
		date = "not set"
	}

	header := titleStyle.Render(fmt.Sprintf("Booking - product %s", m.cfg.ProductID))
	dateLine := fmt.Sprintf("%s %s", labelStyle.Render("Date:"), valueStyle.Render(date))
	countsLine := fmt.Sprintf("%s %s", labelStyle.Render("Participants:"),
		valueStyle.Render(fmt.Sprintf("%d adults, %d children", m.selection.Adults, m.selection.Children)))

	// The total is derived on every render, never stored.
	totalLine := fmt.Sprintf("%s %s", labelStyle.Render("Total:"),
		totalStyle.Render(pricing.Display(m.selection, m.extras, m.cfg)))

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.panel("Slots", m.slotList.View(), m.focus == FocusSlots),
		m.panel("Extras", m.extrasPanel.View(), m.focus == FocusExtras),
	)

	status := ""
	if m.submitting {
		status = statusStyle.Render("Booking...")
	} else if m.feedback != "" {
		status = dangerStyle.Render(m.feedback)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		dateLine,
		countsLine,
		panels,
		totalLine,
		status,
		m.help.View(m),
	)
}

func (m Model) panel(title, content string, focused bool) string {
	style := inactivePanelStyle
	header := inactivePanelTitleStyle
	if focused {
		style = activePanelStyle
		header = activePanelTitleStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header.Render(title), content))
}
