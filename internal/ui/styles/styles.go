// Package styles holds the lipgloss styles shared by every screen.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	ColorPrimary   = lipgloss.Color("39")  // Sky blue
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorMuted     = lipgloss.Color("240") // Darker gray
	ColorHighlight = lipgloss.Color("214") // Sunshine orange
	ColorSuccess   = lipgloss.Color("78")  // Green
	ColorError     = lipgloss.Color("196") // Red
)

// PrimaryPanel frames date, icon, description and temperatures.
var PrimaryPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 3)

// ExtraPanel frames humidity, pressure and wind.
var ExtraPanel = lipgloss.NewStyle().
	Background(lipgloss.Color("236")).
	Padding(1, 3)

// Date is the friendly date line.
var Date = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

// HighTemp is the day's maximum.
var HighTemp = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

// LowTemp is the day's minimum.
var LowTemp = lipgloss.NewStyle().
	Foreground(ColorSecondary)

// Description is the weather condition text.
var Description = lipgloss.NewStyle().
	Foreground(ColorSecondary)

// Icon renders the condition glyph.
var Icon = lipgloss.NewStyle().
	Foreground(ColorHighlight).
	Bold(true).
	PaddingRight(2)

// DetailLabel is the caption in the extra details panel.
var DetailLabel = lipgloss.NewStyle().
	Foreground(ColorHighlight).
	Width(10)

// DetailValue is the value in the extra details panel.
var DetailValue = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

// Title is a screen heading.
var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorHighlight).
	MarginBottom(1)

// Selected marks the focused row in lists.
var Selected = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(ColorPrimary).
	Padding(0, 1)

// Normal is an unfocused list row.
var Normal = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// Muted is for hints and secondary text.
var Muted = lipgloss.NewStyle().
	Foreground(ColorMuted)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusOK is a successful status message.
var StatusOK = lipgloss.NewStyle().
	Foreground(ColorSuccess)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true).
	Padding(0, 1)

// DebugPanel frames the debug overlay.
var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorMuted).
	Padding(1, 2)

// DebugHeader is a section header inside the debug overlay.
var DebugHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorHighlight)
