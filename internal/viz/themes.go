package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/highlight"
)

// Theme maps every highlight class to a bar color.
type Theme struct {
	Name        string
	Default     lipgloss.Color
	Highlighted lipgloss.Color
	Pivot       lipgloss.Color
	Sorted      lipgloss.Color
	InRange     lipgloss.Color
	Excluded    lipgloss.Color
	Mid         lipgloss.Color
	Current     lipgloss.Color
	Found       lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:        "classic",
		Default:     lipgloss.Color("#4a90d9"),
		Highlighted: lipgloss.Color("#ff5252"),
		Pivot:       lipgloss.Color("#ffb300"),
		Sorted:      lipgloss.Color("#43a047"),
		InRange:     lipgloss.Color("#4a90d9"),
		Excluded:    lipgloss.Color("#3c3c46"),
		Mid:         lipgloss.Color("#ffb300"),
		Current:     lipgloss.Color("#ff5252"),
		Found:       lipgloss.Color("#43a047"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666688"),
	}

	ThemeCyberpunk = Theme{
		Name:        "cyberpunk",
		Default:     lipgloss.Color("#00ffff"),
		Highlighted: lipgloss.Color("#ff00ff"),
		Pivot:       lipgloss.Color("#ffff00"),
		Sorted:      lipgloss.Color("#00ff00"),
		InRange:     lipgloss.Color("#00ffff"),
		Excluded:    lipgloss.Color("#333333"),
		Mid:         lipgloss.Color("#ffff00"),
		Current:     lipgloss.Color("#ff00ff"),
		Found:       lipgloss.Color("#00ff00"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666666"),
	}

	ThemeRetro = Theme{
		Name:        "retro",
		Default:     lipgloss.Color("#00aa00"),
		Highlighted: lipgloss.Color("#ffff00"),
		Pivot:       lipgloss.Color("#88ff88"),
		Sorted:      lipgloss.Color("#00ff00"),
		InRange:     lipgloss.Color("#00aa00"),
		Excluded:    lipgloss.Color("#003300"),
		Mid:         lipgloss.Color("#88ff88"),
		Current:     lipgloss.Color("#ffff00"),
		Found:       lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Default:     lipgloss.Color("#feca57"),
		Highlighted: lipgloss.Color("#ff4757"),
		Pivot:       lipgloss.Color("#ff9ff3"),
		Sorted:      lipgloss.Color("#5fd068"),
		InRange:     lipgloss.Color("#feca57"),
		Excluded:    lipgloss.Color("#4b3b4c"),
		Mid:         lipgloss.Color("#ff9ff3"),
		Current:     lipgloss.Color("#ff4757"),
		Found:       lipgloss.Color("#5fd068"),
		Text:        lipgloss.Color("#fff5f5"),
		Muted:       lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetro,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color returns the bar color for c.
func (t Theme) Color(c highlight.Class) lipgloss.Color {
	switch c {
	case highlight.Found:
		return t.Found
	case highlight.Current:
		return t.Current
	case highlight.Mid:
		return t.Mid
	case highlight.InRange:
		return t.InRange
	case highlight.Excluded:
		return t.Excluded
	case highlight.Sorted:
		return t.Sorted
	case highlight.Pivot:
		return t.Pivot
	case highlight.Highlighted:
		return t.Highlighted
	}
	return t.Default
}
