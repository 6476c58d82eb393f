// Package theme holds the pre-configured lipgloss styles for the picker.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// --- Dark palette ---
const (
	darkGreen              = "#98BB6C"
	darkYellow             = "#FF9E3B"
	darkRed                = "#FF5D62"
	darkOrange             = "#FFA066"
	darkCyan               = "#7E9CD8"
	darkBlue               = "#7FB4CA"
	darkViolet             = "#957FB8"
	darkLightText          = "#DCD7BA"
	darkMutedText          = "#727169"
	darkBorder             = "#363646"
	darkSelectedBackground = "#223249"
)

// --- Light palette ---
const (
	lightGreen              = "#4E7C5A"
	lightYellow             = "#A68A64"
	lightRed                = "#C34043"
	lightOrange             = "#CC6B4E"
	lightCyan               = "#5B8BBE"
	lightBlue               = "#4F7CAC"
	lightViolet             = "#674D7A"
	lightLightText          = "#2B2F42"
	lightMutedText          = "#6C7086"
	lightBorder             = "#B5BDC5"
	lightSelectedBackground = "#E2E6F3"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds all the pre-configured styles for the picker.
type Theme struct {
	Colors Colors

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Marked   lipgloss.Style

	// Interactive elements
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Match       lipgloss.Style

	// Containers
	PreviewBorder lipgloss.Style
}

// NewTheme builds a theme for the configured selection: "dark" and "light"
// force the background assumption, "terminal" uses ANSI colors only, anything
// else auto-detects.
func NewTheme(name string) *Theme {
	switch normalizeThemeName(name) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return newThemeFromColors(newAdaptiveColors())
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return newThemeFromColors(newAdaptiveColors())
	case "terminal":
		return newThemeFromColors(newTerminalColors())
	default:
		// Terminals without 256-color support get the ANSI palette
		if termenv.ColorProfile() == termenv.ANSI || termenv.ColorProfile() == termenv.Ascii {
			return newThemeFromColors(newTerminalColors())
		}
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
		return newThemeFromColors(newAdaptiveColors())
	}
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Marked: lipgloss.NewStyle().
			Foreground(colors.Yellow),

		Prompt: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Match: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		PreviewBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),
	}
}

// StatusStyle returns the style for a porcelain status symbol as rendered in
// candidate lines.
func (t *Theme) StatusStyle(symbol string) lipgloss.Style {
	switch symbol {
	case "~":
		return lipgloss.NewStyle().Foreground(t.Colors.Yellow)
	case "+":
		return lipgloss.NewStyle().Foreground(t.Colors.Green)
	case "-":
		return lipgloss.NewStyle().Foreground(t.Colors.Red)
	case "→":
		return lipgloss.NewStyle().Foreground(t.Colors.Blue)
	case "C":
		return lipgloss.NewStyle().Foreground(t.Colors.Cyan)
	case "U":
		return lipgloss.NewStyle().Foreground(t.Colors.Orange)
	case "?":
		return t.Muted
	default:
		return t.Normal
	}
}

// CommitTypeStyle returns the style for a conventional-commit type tag.
func (t *Theme) CommitTypeStyle(commitType string) lipgloss.Style {
	switch commitType {
	case "feat":
		return lipgloss.NewStyle().Foreground(t.Colors.Green)
	case "fix":
		return lipgloss.NewStyle().Foreground(t.Colors.Red)
	case "docs":
		return lipgloss.NewStyle().Foreground(t.Colors.Blue)
	case "refactor", "perf":
		return lipgloss.NewStyle().Foreground(t.Colors.Violet)
	case "test":
		return lipgloss.NewStyle().Foreground(t.Colors.Cyan)
	case "chore", "build", "ci":
		return t.Muted
	default:
		return t.Normal
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func newAdaptiveColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: lightGreen, Dark: darkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: lightYellow, Dark: darkYellow},
		Red:                lipgloss.AdaptiveColor{Light: lightRed, Dark: darkRed},
		Orange:             lipgloss.AdaptiveColor{Light: lightOrange, Dark: darkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: lightCyan, Dark: darkCyan},
		Blue:               lipgloss.AdaptiveColor{Light: lightBlue, Dark: darkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: lightViolet, Dark: darkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: lightLightText, Dark: darkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: lightMutedText, Dark: darkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: lightBorder, Dark: darkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: lightSelectedBackground, Dark: darkSelectedBackground},
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
	}
}
