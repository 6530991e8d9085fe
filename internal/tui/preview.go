package tui

import (
	"fmt"
	"image/color"
	"image/png"
	"math"
	"os"
	"strings"

	"maptile/internal/render"
)

// rerender builds a fresh tile from the loaded features using the visible
// layers. Tiles are one-shot, so every change renders a new one.
func (m *Model) rerender() {
	// non-nil even when every layer is hidden; a nil filter keeps all kinds
	kinds := make([]render.Kind, 0, len(render.Kinds))
	for _, k := range render.Kinds {
		if m.layers[k] {
			kinds = append(kinds, k)
		}
	}
	tile := render.NewTile(render.Options{
		Classifier: m.cfg.Classifier(),
		Kinds:      kinds,
	})
	tile.AddAll(m.features)

	img, err := tile.Render(m.cfg.Width, m.cfg.Height)
	if err != nil {
		m.status = "render error: " + err.Error()
		return
	}
	m.img = img
	m.stats = tile.Stats()
	m.status = m.statsLine()
}

func (m Model) statsLine() string {
	s := m.stats
	return fmt.Sprintf("features=%d road=%d waterway=%d border=%d dropped=%d skipped=%d",
		s.Features, s.PerKind[render.KindRoad], s.PerKind[render.KindWaterway],
		s.PerKind[render.KindBorder], s.Dropped, s.Skipped)
}

// sample maps a micro-pixel of a wMic x hMic grid onto the rendered image,
// fitting the image uniformly and applying zoom and pan. ok is false for
// background or out-of-image samples.
func (m Model) sample(mx, my, wMic, hMic int) (color.RGBA, bool) {
	if m.img == nil {
		return color.RGBA{}, false
	}
	b := m.img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return color.RGBA{}, false
	}
	fit := math.Min(float64(wMic)/iw, float64(hMic)/ih) * m.zoom
	cx := float64(wMic)/2 + float64(m.offsetX*2)
	cy := float64(hMic)/2 + float64(m.offsetY*4)
	px := int(math.Floor((float64(mx)+0.5-cx)/fit + iw/2))
	py := int(math.Floor((float64(my)+0.5-cy)/fit + ih/2))
	if px < 0 || py < 0 || px >= b.Dx() || py >= b.Dy() {
		return color.RGBA{}, false
	}
	c := m.img.RGBAAt(b.Min.X+px, b.Min.Y+py)
	return c, c != render.Background
}

func (m Model) renderBrailleMap(w, h int) string {
	if m.img == nil {
		return dimStyle.Render("no tile rendered: Tab to pick a file or p to paste features")
	}
	br := newBrailleBuf(w, h)
	wMic, hMic := w*2, h*4
	for my := 0; my < hMic; my++ {
		for mx := 0; mx < wMic; mx++ {
			if c, ok := m.sample(mx, my, wMic, hMic); ok {
				br.setPixel(mx, my, c)
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// writePNG stores the current tile at the configured output path.
func (m *Model) writePNG() {
	if m.img == nil {
		m.status = "nothing to write"
		return
	}
	f, err := os.Create(m.cfg.Output)
	if err != nil {
		m.status = "write error: " + err.Error()
		return
	}
	defer f.Close()
	if err := png.Encode(f, m.img); err != nil {
		m.status = "write error: " + err.Error()
		return
	}
	m.status = "wrote " + m.cfg.Output
}
