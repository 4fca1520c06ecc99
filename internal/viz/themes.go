package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Ball    lipgloss.Color
	Shadow  lipgloss.Color
	Grid    lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeMinimal = Theme{
		Name:    "minimal",
		Ball:    lipgloss.Color("#5aa0ff"),
		Shadow:  lipgloss.Color("#444444"),
		Grid:    lipgloss.Color("#262626"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Ball:    lipgloss.Color("#ff00ff"), // Magenta
		Shadow:  lipgloss.Color("#550055"),
		Grid:    lipgloss.Color("#003333"),
		Accent:  lipgloss.Color("#00ffff"), // Cyan
		Text:    lipgloss.Color("#ffff00"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ff8800"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Ball:    lipgloss.Color("#00ff00"), // Green phosphor
		Shadow:  lipgloss.Color("#005500"),
		Grid:    lipgloss.Color("#002200"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Ball:    lipgloss.Color("#ffd700"),
		Shadow:  lipgloss.Color("#003366"),
		Grid:    lipgloss.Color("#00264d"),
		Accent:  lipgloss.Color("#00a8cc"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Ball:    lipgloss.Color("#ff6b6b"), // Coral
		Shadow:  lipgloss.Color("#5a3a5b"),
		Grid:    lipgloss.Color("#3d2a3e"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Error:   lipgloss.Color("#ff4757"),
	}

	// All available themes
	Themes = []Theme{
		ThemeMinimal,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Themes[0], false
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// LayerStyles maps canvas layers to this theme's colours.
func (t Theme) LayerStyles() map[Layer]lipgloss.Style {
	return map[Layer]lipgloss.Style{
		LayerGrid:   lipgloss.NewStyle().Foreground(t.Grid),
		LayerShadow: lipgloss.NewStyle().Foreground(t.Shadow),
		LayerRing:   lipgloss.NewStyle().Foreground(t.Accent),
		LayerBall:   lipgloss.NewStyle().Foreground(t.Ball).Bold(true),
		LayerText:   lipgloss.NewStyle().Foreground(t.Text),
	}
}
