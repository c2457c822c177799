// Package settings is the preferences screen reached from the detail menu.
package settings

import (
	"fmt"
	"strings"

	"github.com/abelbrown/sunshine/internal/config"
	"github.com/abelbrown/sunshine/internal/otel"
	"github.com/abelbrown/sunshine/internal/ui/styles"
	"github.com/abelbrown/sunshine/internal/weather"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Closed is sent when the user leaves the settings screen.
// Changed is true if any preference was modified.
type Closed struct {
	Changed bool
}

type row int

const (
	rowUnits row = iota
	rowLocation
	rowShare
	rowCount
)

// Model is the settings view
type Model struct {
	config  *config.Config
	events  *otel.Logger
	cursor  row
	editing bool
	input   textinput.Model
	changed bool
	saveErr error
	width   int
	height  int
}

// New creates a settings view editing cfg in place.
func New(cfg *config.Config, events *otel.Logger) Model {
	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 40
	ti.Placeholder = "postal code or city"

	return Model{config: cfg, events: events, input: ti}
}

// SetSize updates dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m.close()

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < rowCount-1 {
				m.cursor++
			}

		case "enter", " ":
			return m.handleSelect()
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.editing = false
			m.input.Blur()
			m.input.Reset()
			return m, nil

		case "enter":
			if v := strings.TrimSpace(m.input.Value()); v != "" && v != m.config.Location {
				m.config.Location = v
				m.changed = true
			}
			m.editing = false
			m.input.Blur()
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSelect() (Model, tea.Cmd) {
	switch m.cursor {
	case rowUnits:
		m.config.Units = string(m.config.UnitSystem().Toggle())
		m.changed = true

	case rowLocation:
		m.editing = true
		m.input.SetValue(m.config.Location)
		m.input.Focus()
		return m, textinput.Blink

	case rowShare:
		if m.config.Share.Target == config.ShareOutbox {
			m.config.Share.Target = config.ShareClipboard
		} else {
			m.config.Share.Target = config.ShareOutbox
		}
		m.changed = true
	}
	return m, nil
}

// close saves any change and tells the host to return.
func (m Model) close() (Model, tea.Cmd) {
	if m.changed {
		if err := m.config.Save(); err != nil {
			m.saveErr = err
			m.events.Error(otel.KindError, "settings", err)
		} else {
			m.events.Emit(otel.Event{
				Level: otel.LevelInfo,
				Kind:  otel.KindConfigSaved,
				Comp:  "settings",
				Extra: map[string]any{"units": m.config.Units, "share": m.config.Share.Target},
			})
		}
	}
	changed := m.changed
	m.changed = false
	return m, func() tea.Msg { return Closed{Changed: changed} }
}

// Units returns the unit system currently selected.
func (m Model) Units() weather.Units {
	return m.config.UnitSystem()
}

// View renders the settings list
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Settings"))
	b.WriteString("\n")

	rows := []string{
		fmt.Sprintf("Units:     %s", m.config.UnitSystem()),
		fmt.Sprintf("Location:  %s", m.config.Location),
		fmt.Sprintf("Share to:  %s", m.config.Share.Target),
	}
	for i, r := range rows {
		if row(i) == rowLocation && m.editing {
			r = "Location:  " + m.input.View()
		}
		if row(i) == m.cursor {
			b.WriteString(styles.Selected.Render(r))
		} else {
			b.WriteString(styles.Normal.Render(r))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.saveErr != nil {
		b.WriteString(styles.ErrorStyle.Render("Save failed: " + m.saveErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render("enter: change  esc: back"))
	return b.String()
}
