package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf packs 2x4 micro-pixels into each terminal cell and remembers
// the color of the last pixel set in a cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	c    [][]color.RGBA
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]color.RGBA, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]color.RGBA, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// dot bits indexed by [row][column] inside a cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, col color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[ry][rx]
	b.c[cy][cx] = col
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// toLines renders the buffer, coloring runs of cells that share a color.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		x := 0
		for x < b.w {
			if b.m[y][x] == 0 {
				sb.WriteRune(' ')
				x++
				continue
			}
			col := b.c[y][x]
			var run []rune
			for x < b.w && b.m[y][x] != 0 && b.c[y][x] == col {
				run = append(run, rune(0x2800+int(b.m[y][x])))
				x++
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(hexColor(col)).Render(string(run)))
		}
		out[y] = sb.String()
	}
	return out
}
