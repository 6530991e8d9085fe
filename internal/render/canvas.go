package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Canvas is a Surface backed by an RGBA image. Strokes are expanded into
// quads with square caps and filled through a vector rasterizer.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas allocates a transparent width x height canvas. Negative sizes
// are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) empty() bool {
	b := c.img.Bounds()
	return b.Dx() == 0 || b.Dy() == 0
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) flush(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// StrokePolyline implements Surface.
func (c *Canvas) StrokePolyline(pts []Point, col color.Color, width float64, dash []float64) {
	if len(pts) < 2 || width <= 0 || c.empty() {
		return
	}
	c.begin()
	hw := width / 2
	for _, run := range dashRuns(pts, dash) {
		for i := 1; i < len(run); i++ {
			c.segment(run[i-1], run[i], hw)
		}
	}
	c.flush(col)
}

// segment adds a quad of half-width hw around a-b, extended by hw past both
// ends. Every quad has the same winding so overlaps saturate instead of
// cancelling.
func (c *Canvas) segment(a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	ux, uy := 1.0, 0.0
	if l > 0 {
		ux, uy = dx/l, dy/l
	}
	ax, ay := a.X-ux*hw, a.Y-uy*hw
	bx, by := b.X+ux*hw, b.Y+uy*hw
	nx, ny := -uy*hw, ux*hw

	c.z.MoveTo(float32(ax+nx), float32(ay+ny))
	c.z.LineTo(float32(bx+nx), float32(by+ny))
	c.z.LineTo(float32(bx-nx), float32(by-ny))
	c.z.LineTo(float32(ax-nx), float32(ay-ny))
	c.z.ClosePath()
}

// FillPolygon implements Surface.
func (c *Canvas) FillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 || c.empty() {
		return
	}
	c.begin()
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.flush(col)
}
