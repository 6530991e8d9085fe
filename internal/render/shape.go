package render

import (
	"fmt"
	"image/color"

	"github.com/paulmach/orb"
)

// Point is a screen-space coordinate.
type Point struct {
	X, Y float64
}

// Kind identifies a shape variant.
type Kind int

const (
	KindRoad Kind = iota
	KindWaterway
	KindBorder
)

// Kinds lists every shape variant in draw order.
var Kinds = []Kind{KindWaterway, KindBorder, KindRoad}

func (k Kind) String() string {
	switch k {
	case KindRoad:
		return "road"
	case KindWaterway:
		return "waterway"
	case KindBorder:
		return "border"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Draw order. Lower values are painted first.
const (
	WaterwayZIndex = 10
	BorderZIndex   = 20
	RoadZIndex     = 30
)

// Surface is the drawing target shapes render onto.
type Surface interface {
	// StrokePolyline draws a connected line through pts. A non-empty dash
	// alternates drawn and skipped lengths in pixels.
	StrokePolyline(pts []Point, c color.Color, width float64, dash []float64)
	// FillPolygon fills the closed ring through pts.
	FillPolygon(pts []Point, c color.Color)
}

// Shape is a renderable shape. The set of implementations is closed:
// *Road, *Waterway and *Border.
type Shape interface {
	Kind() Kind
	ZIndex() int
	ScreenCoordinates() []Point
	// TranslateAndScale maps geographic coordinates into canvas pixels in
	// place. It must be applied exactly once.
	TranslateAndScale(originX, originY, scale, canvasHeight float64)
	Render(s Surface)
}

type baseShape struct {
	coords []Point
}

func newBaseShape(coords []orb.Point) baseShape {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point{X: c.Lon(), Y: c.Lat()}
	}
	return baseShape{coords: pts}
}

func (b *baseShape) ScreenCoordinates() []Point {
	return b.coords
}

func (b *baseShape) TranslateAndScale(originX, originY, scale, canvasHeight float64) {
	for i := range b.coords {
		p := &b.coords[i]
		p.X = (p.X - originX) * scale
		p.Y = canvasHeight - (p.Y-originY)*scale
	}
}

var (
	roadColor     = color.RGBA{R: 0xE8, G: 0xA3, B: 0x3D, A: 0xFF}
	waterwayColor = color.RGBA{R: 0x4A, G: 0x90, B: 0xD9, A: 0xFF}
	borderColor   = color.RGBA{R: 0x8E, G: 0x44, B: 0xAD, A: 0xFF}
)

const (
	roadWidth     = 3
	waterwayWidth = 2
	borderWidth   = 2
)

var borderDash = []float64{6, 4}

// Road is a highway drawn as a solid polyline on top of everything else.
type Road struct {
	baseShape
}

// NewRoad copies coords into a new Road.
func NewRoad(coords []orb.Point) *Road {
	return &Road{baseShape: newBaseShape(coords)}
}

func (*Road) Kind() Kind  { return KindRoad }
func (*Road) ZIndex() int { return RoadZIndex }

func (r *Road) Render(s Surface) {
	s.StrokePolyline(r.coords, roadColor, roadWidth, nil)
}

// Waterway is a river or water body. Closed waterways are filled, open
// ones are stroked.
type Waterway struct {
	baseShape
	Closed bool
}

// NewWaterway copies coords into a new Waterway.
func NewWaterway(coords []orb.Point, closed bool) *Waterway {
	return &Waterway{baseShape: newBaseShape(coords), Closed: closed}
}

func (*Waterway) Kind() Kind  { return KindWaterway }
func (*Waterway) ZIndex() int { return WaterwayZIndex }

func (w *Waterway) Render(s Surface) {
	if w.Closed {
		s.FillPolygon(w.coords, waterwayColor)
		return
	}
	s.StrokePolyline(w.coords, waterwayColor, waterwayWidth, nil)
}

// Border is an administrative boundary drawn as a dashed line.
type Border struct {
	baseShape
}

// NewBorder copies coords into a new Border.
func NewBorder(coords []orb.Point) *Border {
	return &Border{baseShape: newBaseShape(coords)}
}

func (*Border) Kind() Kind  { return KindBorder }
func (*Border) ZIndex() int { return BorderZIndex }

func (b *Border) Render(s Surface) {
	s.StrokePolyline(b.coords, borderColor, borderWidth, borderDash)
}
