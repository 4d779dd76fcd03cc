package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorBlue is used for informational lines such as package creation.
	ColorBlue = lipgloss.Color("39")

	// ColorGreen is used for created files and successful installs.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for errors.
	ColorRed = lipgloss.Color("196")

	// ColorCyan is used for identifiable nouns: paths, coordinates.
	ColorCyan = lipgloss.Color("14")
)

// Semantic styles.
var (
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleWarn    = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleError   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	StyleNoun    = lipgloss.NewStyle().Foreground(ColorCyan)
)

// Level classifies a status line.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// LevelStyle returns the lipgloss style for a status level.
// Unknown levels return an unstyled default.
func LevelStyle(l Level) lipgloss.Style {
	switch l {
	case LevelInfo:
		return StyleInfo
	case LevelSuccess:
		return StyleSuccess
	case LevelWarn:
		return StyleWarn
	case LevelError:
		return StyleError
	default:
		return lipgloss.NewStyle()
	}
}
