package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases keep the style vars below readable.
const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	headerBarStyle   = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
	headerAppStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Background(colorMantle)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorAccent).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorMantle).Padding(0, 1)
	tabSepStyle      = lipgloss.NewStyle().Foreground(colorSurface2).Background(colorMantle)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface2).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
	hintStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorError).
				Padding(0, 1)

	choiceStyle         = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	selectedChoiceStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorTeal).Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorMantle).Padding(0, 2)
	helpKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
)
