package tui

import (
	"image"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"maptile/internal/config"
	"maptile/internal/feature"
	"maptile/internal/render"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	cfg      config.Config
	features []*feature.RawFeature
	layers   map[render.Kind]bool
	img      *image.RGBA
	stats    render.Stats

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// feature table
	showAttrs bool
	tbl       table.Model
}

// New returns a preview with no features loaded.
func New(cfg config.Config) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "tilerender ready",
		cfg:         cfg,
		layers:      map[render.Kind]bool{},
	}
	for _, k := range render.Kinds {
		m.layers[k] = true
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "One feature per line: LINESTRING(0 0, 1 1); highway=primary. Enter adds; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithFeatures preloads already loaded features, e.g. from the CLI.
func NewWithFeatures(cfg config.Config, path string, fs []*feature.RawFeature) Model {
	m := New(cfg)
	m.selPath = path
	m.features = fs
	m.rerender()
	return m
}

func (m Model) Init() tea.Cmd { return nil }
