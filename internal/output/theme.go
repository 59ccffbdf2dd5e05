package output

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the terminal renderers.
type Theme struct {
	Name         string
	Border       lipgloss.Color // Subtle borders and axes
	TextDim      lipgloss.Color // Hints and labels
	TextMuted    lipgloss.Color // Secondary text
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color // Headings and ordinary bars
	AccentBright lipgloss.Color // Totals
	Event        lipgloss.Color // Life-event years and markers
	Positive     lipgloss.Color
	Warning      lipgloss.Color
}

// Active is the currently selected theme.
var Active = Ocean

// Ocean is the default theme, blue to match the report chart hues.
var Ocean = Theme{
	Name:         "ocean",
	Border:       lipgloss.Color("#334155"),
	TextDim:      lipgloss.Color("#64748B"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#F1F5F9"),
	Accent:       lipgloss.Color("#3B82F6"),
	AccentBright: lipgloss.Color("#93C5FD"),
	Event:        lipgloss.Color("#1D4ED8"),
	Positive:     lipgloss.Color("#22C55E"),
	Warning:      lipgloss.Color("#F59E0B"),
}

// Sunset is a warm orange and magenta theme.
var Sunset = Theme{
	Name:         "sunset",
	Border:       lipgloss.Color("#57534E"),
	TextDim:      lipgloss.Color("#78716C"),
	TextMuted:    lipgloss.Color("#A8A29E"),
	TextPrimary:  lipgloss.Color("#FAFAF9"),
	Accent:       lipgloss.Color("#F97316"),
	AccentBright: lipgloss.Color("#FDBA74"),
	Event:        lipgloss.Color("#DB2777"),
	Positive:     lipgloss.Color("#84CC16"),
	Warning:      lipgloss.Color("#EF4444"),
}

// Forest is a muted green theme.
var Forest = Theme{
	Name:         "forest",
	Border:       lipgloss.Color("#3F4A3C"),
	TextDim:      lipgloss.Color("#6B7A65"),
	TextMuted:    lipgloss.Color("#9CAF88"),
	TextPrimary:  lipgloss.Color("#F0F4EC"),
	Accent:       lipgloss.Color("#879A39"),
	AccentBright: lipgloss.Color("#A3B859"),
	Event:        lipgloss.Color("#DA702C"),
	Positive:     lipgloss.Color("#A3B859"),
	Warning:      lipgloss.Color("#D0A215"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Border:       lipgloss.Color("8"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("4"),
	AccentBright: lipgloss.Color("12"),
	Event:        lipgloss.Color("5"),
	Positive:     lipgloss.Color("2"),
	Warning:      lipgloss.Color("3"),
}

// AllThemes lists the available themes.
var AllThemes = []Theme{Ocean, Sunset, Forest, Terminal}

// ThemeNames returns the names of the available themes.
func ThemeNames() []string {
	names := make([]string, 0, len(AllThemes))
	for _, t := range AllThemes {
		names = append(names, t.Name)
	}
	return names
}

// ThemeByName returns a theme by its name, defaulting to Ocean.
func ThemeByName(name string) Theme {
	for _, t := range AllThemes {
		if t.Name == name {
			return t
		}
	}
	return Ocean
}

// SetActiveTheme sets the active theme by name.
func SetActiveTheme(name string) {
	Active = ThemeByName(name)
}
