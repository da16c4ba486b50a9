package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Cosmic color theme, matching the banner's indigo-to-pink palette.
var (
	ColorBorder  = lipgloss.Color("#4b0082") // indigo
	ColorStar    = lipgloss.Color("#ff1493") // deep pink
	ColorError   = lipgloss.Color("#ff4500") // orange red
	ColorSuccess = lipgloss.Color("#32cd32") // lime green
	ColorStep    = lipgloss.Color("#48d1cc") // medium turquoise
	ColorWarning = lipgloss.Color("#ffa500") // orange
	ColorPrompt  = lipgloss.Color("#da70d6") // orchid
	ColorMuted   = lipgloss.Color("#78716c")
)

const reset = "\x1b[0m"

var (
	stepStyle    = lipgloss.NewStyle().Foreground(ColorStep)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	promptStyle  = lipgloss.NewStyle().Foreground(ColorPrompt)
)

// cosmicStyles returns charmbracelet/log styles with the cosmic theme.
func cosmicStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(ColorStep).
		Bold(true)

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(ColorWarning).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(ColorError).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(ColorMuted)

	// Timestamp in muted gray
	styles.Timestamp = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Keys in turquoise for structured logging
	styles.Key = lipgloss.NewStyle().
		Foreground(ColorStep)

	// Values in orchid
	styles.Value = lipgloss.NewStyle().
		Foreground(ColorPrompt)

	return styles
}
