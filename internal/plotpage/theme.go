package plotpage

// Theme selects the chart color scheme.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds the chart colors of a theme.
type ThemeConfig struct {
	Background string
	Grid       string
	Axis       string
	Text       string
	TextMuted  string

	// Series colors in assignment order.
	Series []string
}

// GetThemeConfig returns the configuration for a given theme. Unknown themes
// fall back to light.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background: "#fafaf9", // stone-50.
	Grid:       "#e7e5e4", // stone-200.
	Axis:       "#a8a29e", // stone-400.
	Text:       "#44403c", // stone-700.
	TextMuted:  "#78716c", // stone-500.
	Series: []string{
		"#0369a1", // sky-700.
		"#a16207", // amber-700.
		"#4d7c0f", // lime-700.
		"#be185d", // pink-700.
	},
}

var darkTheme = ThemeConfig{
	Background: "#0c0a09", // stone-950.
	Grid:       "#44403c", // stone-700.
	Axis:       "#57534e", // stone-600.
	Text:       "#d6d3d1", // stone-300.
	TextMuted:  "#a8a29e", // stone-400.
	Series: []string{
		"#0284c7", // sky-600.
		"#d97706", // amber-600.
		"#65a30d", // lime-600.
		"#db2777", // pink-600.
	},
}
