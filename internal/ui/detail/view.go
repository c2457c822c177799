package detail

import (
	"strings"

	"github.com/abelbrown/sunshine/internal/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// View renders the two panels, or the accessibility text when toggled.
func (m Model) View() string {
	if !m.loaded {
		return m.spinner.View() + " Loading forecast…"
	}
	if m.accessible {
		return m.accessibleView()
	}

	primary := styles.PrimaryPanel.Render(m.primaryInfo())
	extra := styles.ExtraPanel.Render(m.extraDetails())

	if m.width > 0 && lipgloss.Width(primary)+lipgloss.Width(extra) < m.width {
		return lipgloss.JoinHorizontal(lipgloss.Top, primary, extra)
	}
	return lipgloss.JoinVertical(lipgloss.Left, primary, extra)
}

// HelpView renders the key hints for the host's footer.
func (m Model) HelpView() string {
	return m.help.View(m.keys)
}

func (m Model) primaryInfo() string {
	d := m.display
	date, _ := d.Slot(SlotDate)
	icon, _ := d.Slot(SlotIcon)
	desc, _ := d.Slot(SlotDescription)
	high, _ := d.Slot(SlotHigh)
	low, _ := d.Slot(SlotLow)

	temps := lipgloss.JoinVertical(lipgloss.Right,
		styles.HighTemp.Render(high.Value),
		styles.LowTemp.Render(low.Value),
	)
	condition := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Icon.Render(icon.Icon.Glyph()),
		styles.Description.Render(desc.Value),
		"   ",
		temps,
	)
	return lipgloss.JoinVertical(lipgloss.Left, styles.Date.Render(date.Value), "", condition)
}

func (m Model) extraDetails() string {
	rows := []struct{ label, value SlotID }{
		{SlotHumidityLabel, SlotHumidity},
		{SlotPressureLabel, SlotPressure},
		{SlotWindLabel, SlotWind},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label, _ := m.display.Slot(r.label)
		value, _ := m.display.Slot(r.value)
		lines = append(lines, styles.DetailLabel.Render(label.Value)+styles.DetailValue.Render(value.Value))
	}
	return strings.Join(lines, "\n")
}

// accessibleView lists each slot's description in reading order.
func (m Model) accessibleView() string {
	order := []SlotID{SlotDate, SlotDescription, SlotHigh, SlotLow, SlotHumidity, SlotPressure, SlotWind}
	lines := make([]string, 0, len(order))
	for _, id := range order {
		if s, ok := m.display.Slot(id); ok {
			lines = append(lines, s.A11y)
		}
	}
	return strings.Join(lines, "\n")
}
