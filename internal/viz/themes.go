package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the live view.
type Theme struct {
	Name      string
	Wireframe lipgloss.Color
	Roll      lipgloss.Color
	Pitch     lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

var (
	// Matches the launcher tile.
	ThemePhosphor = Theme{
		Name:      "phosphor",
		Wireframe: lipgloss.Color("#3ad86d"),
		Roll:      lipgloss.Color("#4fd8c4"),
		Pitch:     lipgloss.Color("#d8c94f"),
		Border:    lipgloss.Color("#1e3c2a"),
		Text:      lipgloss.Color("#d6f5df"),
		Muted:     lipgloss.Color("#5a7a66"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeAmber = Theme{
		Name:      "amber",
		Wireframe: lipgloss.Color("#ffb000"),
		Roll:      lipgloss.Color("#ffd27f"),
		Pitch:     lipgloss.Color("#ff7f50"),
		Border:    lipgloss.Color("#4a3300"),
		Text:      lipgloss.Color("#ffe8b0"),
		Muted:     lipgloss.Color("#8a6a30"),
		Warning:   lipgloss.Color("#ff4444"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Wireframe: lipgloss.Color("#00a8cc"),
		Roll:      lipgloss.Color("#ffd700"),
		Pitch:     lipgloss.Color("#00ff88"),
		Border:    lipgloss.Color("#003355"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Wireframe: lipgloss.Color("#ffffff"),
		Roll:      lipgloss.Color("#cccccc"),
		Pitch:     lipgloss.Color("#0088ff"),
		Border:    lipgloss.Color("#444444"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	CurrentTheme = ThemePhosphor

	Themes = []Theme{
		ThemePhosphor,
		ThemeAmber,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to phosphor.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme advances CurrentTheme in Themes order.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
