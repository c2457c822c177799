package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/sunshine/internal/otel"
	"github.com/abelbrown/sunshine/internal/ui/styles"
	"github.com/mattn/go-runewidth"
)

// debugPanelChrome is the number of lines DebugPanel's border and padding use.
const debugPanelChrome = 4

// debugOverlay renders event counts and the most recent events.
// Returns empty string if ring is nil.
func debugOverlay(ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()

	lines := []string{
		styles.DebugHeader.Render("Screen"),
		fmt.Sprintf("  Queries:  %d issued, %d loaded, %d empty, %d errors",
			stats[otel.KindQueryStart], stats[otel.KindQueryLoaded], stats[otel.KindQueryEmpty], stats[otel.KindQueryError]),
		fmt.Sprintf("  Shares:   %d requested, %d delivered, %d failed",
			stats[otel.KindShareRequest], stats[otel.KindShareDispatch], stats[otel.KindShareError]),
		fmt.Sprintf("  Buffer:   %d / %d events", ring.Len(), ring.Cap()),
		"",
		styles.DebugHeader.Render("Recent Events"),
	}

	for _, e := range ring.Last(15) {
		line := fmt.Sprintf("  %6s  %-16s", formatAge(time.Since(e.Time)), e.Kind)
		if e.Msg != "" {
			line += "  " + runewidth.Truncate(e.Msg, 40, "…")
		}
		if e.Err != "" {
			line += "  ERR:" + runewidth.Truncate(e.Err, 30, "…")
		}
		if e.Dur > 0 {
			line += "  " + e.Dur.Round(time.Microsecond).String()
		}
		lines = append(lines, line)
	}

	maxHeight := height - debugPanelChrome
	if maxHeight < 1 {
		maxHeight = 1
	}
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := 76
	if panelWidth > width-4 {
		panelWidth = width - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	return styles.DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration as a compact human string.
// Negative durations from clock skew clamp to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}
