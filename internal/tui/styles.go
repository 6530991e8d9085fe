package tui

import (
	"github.com/charmbracelet/lipgloss"

	"maptile/internal/render"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	offStyle   = lipgloss.NewStyle().Foreground(baseDimFg).Strikethrough(true)
)

// layerColors match the colors each shape kind is painted with.
var layerColors = map[render.Kind]lipgloss.Color{
	render.KindWaterway: lipgloss.Color("#4A90D9"),
	render.KindBorder:   lipgloss.Color("#8E44AD"),
	render.KindRoad:     lipgloss.Color("#E8A33D"),
}
