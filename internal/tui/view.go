package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"maptile/internal/render"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	header := titleStyle.Render(" tilerender ─ tile preview ") + "  " + m.renderLegend()
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	mapWidth := max(10, contentWidth-sidebarWidth-1)
	mapHeight := contentHeight
	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderBrailleMap(mapWidth, mapHeight))
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	status := dimStyle.Render(" " + m.status + " ")
	bbox := ""
	if b := m.stats.Box; m.img != nil && !b.IsEmpty() {
		bbox = dimStyle.Render(fmt.Sprintf("  bbox=[%.5f %.5f %.5f %.5f]  ", b.MinX, b.MinY, b.MaxX, b.MaxY))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp())
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(bbox))
	right := lipgloss.Place(spacerW+lipgloss.Width(bbox), 1, lipgloss.Right, lipgloss.Center, bbox)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderLegend lists the layers in draw order, dimmed when hidden.
func (m Model) renderLegend() string {
	var parts []string
	for i, k := range render.Kinds {
		label := fmt.Sprintf("%d %s", i+1, k)
		if m.layers[k] {
			parts = append(parts, lipgloss.NewStyle().Foreground(layerColors[k]).Render(label))
		} else {
			parts = append(parts, offStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"1-3 layers",
		"l all",
		"Tab files",
		"Enter open",
		"p paste",
		"a features",
		"w write png",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
