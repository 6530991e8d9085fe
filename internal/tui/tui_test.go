package tui

import (
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/paulmach/orb"

	"maptile/internal/config"
	"maptile/internal/feature"
	"maptile/internal/render"
)

func previewConfig() config.Config {
	c := config.Default()
	c.Width, c.Height = 64, 64
	return c
}

func sampleFeatures() []*feature.RawFeature {
	return []*feature.RawFeature{
		{ID: "r", Type: feature.Polyline, Coordinates: []orb.Point{{0, 0}, {10, 10}}, Properties: map[string]string{"highway": "primary"}},
		{ID: "w", Type: feature.Polyline, Coordinates: []orb.Point{{0, 10}, {10, 0}}, Properties: map[string]string{"waterway": "river"}},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewRendersFeatures(t *testing.T) {
	is := is.New(t)

	m := NewWithFeatures(previewConfig(), "sample.geojson", sampleFeatures())
	is.True(m.img != nil)
	is.Equal(m.stats.PerKind[render.KindRoad], 1)
	is.Equal(m.stats.PerKind[render.KindWaterway], 1)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(Model).View()
	is.True(strings.Contains(view, "tilerender"))
}

func TestPreviewLayerToggle(t *testing.T) {
	is := is.New(t)

	m := NewWithFeatures(previewConfig(), "", sampleFeatures())
	next, _ := m.Update(key("3"))
	m = next.(Model)

	is.True(!m.layers[render.KindRoad])
	is.Equal(m.stats.PerKind[render.KindRoad], 0)
	is.Equal(m.stats.Dropped, 1)
}

func TestPreviewAllLayersHidden(t *testing.T) {
	is := is.New(t)

	m := NewWithFeatures(previewConfig(), "", sampleFeatures())
	for _, k := range []string{"1", "2", "3"} {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}

	for _, k := range render.Kinds {
		is.True(!m.layers[k])
		is.Equal(m.stats.PerKind[k], 0)
	}
	is.Equal(m.stats.Dropped, 2)
	is.Equal(m.stats.Drawn, 0)

	// l brings every layer back
	next, _ := m.Update(key("l"))
	m = next.(Model)
	is.Equal(m.stats.Dropped, 0)
	is.Equal(m.stats.Drawn, 2)
}

func TestPreviewPaste(t *testing.T) {
	is := is.New(t)

	m := New(previewConfig())
	m.addPasted("LINESTRING(0 0, 5 5); boundary=administrative\n")

	is.Equal(len(m.features), 1)
	is.Equal(m.stats.PerKind[render.KindBorder], 1)
	is.True(!m.pasteMode)

	m.addPasted("BOGUS")
	is.True(strings.HasPrefix(m.status, "wkt error"))
}

func TestFeatureTable(t *testing.T) {
	is := is.New(t)

	m := NewWithFeatures(previewConfig(), "", sampleFeatures())
	next, _ := m.Update(key("a"))
	m = next.(Model)

	is.True(m.showAttrs)
	rows := m.tbl.Rows()
	is.Equal(len(rows), 2)
	is.Equal(rows[0][4], "road")
	is.Equal(rows[1][4], "waterway")
	is.Equal(rows[0][5], "highway=primary")
}

func TestBrailleBuf(t *testing.T) {
	is := is.New(t)

	b := newBrailleBuf(2, 1)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	b.setPixel(0, 0, red)
	b.setPixel(1, 3, red)
	b.setPixel(10, 10, red) // out of range

	is.Equal(b.m[0][0], uint8(0x01|0x80))
	is.Equal(b.m[0][1], uint8(0))
	is.Equal(len(b.toLines()), 1)
}
