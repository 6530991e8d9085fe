package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"maptile/internal/feature"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !feature.IsSupported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath replaces the loaded features with the file's and re-renders.
func (m *Model) loadPath(p string) {
	fs, err := feature.Load(p)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.selPath = p
	m.features = fs
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.rerender()
	m.status = "loaded: " + filepath.Base(p) + "  " + m.status
	if m.showAttrs {
		m.refreshAttrs()
	}
}
