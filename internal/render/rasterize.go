package render

import (
	"image"
	"image/color"
	"math"
)

// Background is the canvas fill color.
var Background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Scale returns the uniform pixels-per-unit factor that fits bbox into a
// width x height canvas without stretching either axis. An axis with zero
// extent does not constrain the scale. ok is false when no finite positive
// scale exists: an empty box, a box collapsed to a single point, a box with
// a NaN edge, or a non-positive canvas size.
func Scale(bbox BoundingBox, width, height int) (scale float64, ok bool) {
	if bbox.IsEmpty() || bbox.hasNaN() || width <= 0 || height <= 0 {
		return 0, false
	}
	scale = math.Inf(1)
	if dx := bbox.Width(); dx > 0 {
		scale = float64(width) / dx
	}
	if dy := bbox.Height(); dy > 0 {
		scale = math.Min(scale, float64(height)/dy)
	}
	if math.IsInf(scale, 0) || math.IsNaN(scale) || scale <= 0 {
		return 0, false
	}
	return scale, true
}

// Render rasterizes shapes onto a new opaque width x height canvas filled
// with Background. The queue is drained lowest z-index first, so later
// shapes paint over earlier ones.
func Render(shapes *ShapeQueue, bbox BoundingBox, width, height int) *image.RGBA {
	c := NewCanvas(width, height)
	c.Fill(Background)
	Draw(c, shapes, bbox, width, height)
	return c.Image()
}

// Draw drains shapes onto s. Shapes with fewer than two coordinates are
// skipped: no shape kind represents point features. When bbox has no usable
// scale the queue is drained without drawing anything.
func Draw(s Surface, shapes *ShapeQueue, bbox BoundingBox, width, height int) (drawn, skipped int) {
	log := Logger()

	scale, ok := Scale(bbox, width, height)
	if !ok {
		log.Debug("zero extent, rendering background only",
			"minX", bbox.MinX, "maxX", bbox.MaxX, "minY", bbox.MinY, "maxY", bbox.MaxY,
			"shapes", shapes.Len())
	}

	for shapes.Len() > 0 {
		shape := shapes.Pop()
		if !ok {
			skipped++
			continue
		}
		if len(shape.ScreenCoordinates()) < 2 {
			log.Debug("degenerate shape skipped", "kind", shape.Kind().String())
			skipped++
			continue
		}
		shape.TranslateAndScale(bbox.MinX, bbox.MinY, scale, float64(height))
		shape.Render(s)
		drawn++
	}
	return drawn, skipped
}
