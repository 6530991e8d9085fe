package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"maptile/internal/feature"
	"maptile/internal/render"
)

// layerKeys maps number keys to the layer they toggle, in draw order.
var layerKeys = map[string]render.Kind{
	"1": render.KindWaterway,
	"2": render.KindBorder,
	"3": render.KindRoad,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				m.addPasted(m.ta.Value())
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if k, ok := layerKeys[msg.String()]; ok {
			m.layers[k] = !m.layers[k]
			m.rerender()
			m.status = fmt.Sprintf("%s: %v  %s", k, m.layers[k], m.status)
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "l":
			// toggle all layers
			all := true
			for _, k := range render.Kinds {
				all = all && m.layers[k]
			}
			for _, k := range render.Kinds {
				m.layers[k] = !all
			}
			m.rerender()
		case "w":
			m.writePNG()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			if m.showAttrs {
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
			if m.showSidebar {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m, cmd
			}
			m.offsetY++
		case "down":
			if m.showAttrs {
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
			if m.showSidebar {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m, cmd
			}
			m.offsetY--
		case "left":
			m.offsetX++
		case "right":
			m.offsetX--
		default:
			if m.showSidebar {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m, cmd
			}
		}
	}
	return m, nil
}

// addPasted appends the pasted WKT features and re-renders.
func (m *Model) addPasted(text string) {
	fs, err := feature.ReadWKT(strings.NewReader(text))
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	if len(fs) == 0 {
		m.status = "paste: empty"
		return
	}
	for _, f := range fs {
		f.ID = fmt.Sprintf("paste-%d-%s", len(m.features), f.ID)
	}
	m.features = append(m.features, fs...)
	m.pasteMode = false
	m.ta.Blur()
	m.rerender()
	m.status = fmt.Sprintf("added %d  %s", len(fs), m.status)
}
