package render

import (
	"math"

	"maptile/internal/feature"
)

// BoundingBox accumulates the extent of every tessellated shape.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBoundingBox returns the identity of the min/max fold: extending it with
// any point yields a box around exactly that point.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
}

// Extend grows the box to include p.
func (b *BoundingBox) Extend(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// IsEmpty reports whether no point has been folded in yet.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b BoundingBox) hasNaN() bool {
	return math.IsNaN(b.MinX) || math.IsNaN(b.MaxX) || math.IsNaN(b.MinY) || math.IsNaN(b.MaxY)
}

// Width is MaxX-MinX, or 0 for an empty box.
func (b BoundingBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height is MaxY-MinY, or 0 for an empty box.
func (b BoundingBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// rule is one entry of the shape selection list. The first matching rule
// wins, even when the classifier set several bits.
type rule struct {
	match func(p FeatureProperties, f *feature.RawFeature) bool
	build func(f *feature.RawFeature) Shape
}

var rules = []rule{
	{
		match: func(p FeatureProperties, _ *feature.RawFeature) bool { return p.Has(HasHighway) },
		build: func(f *feature.RawFeature) Shape { return NewRoad(f.Coordinates) },
	},
	{
		match: func(p FeatureProperties, f *feature.RawFeature) bool {
			return p.Has(IsWaterway) && f.Type != feature.Point
		},
		build: func(f *feature.RawFeature) Shape {
			return NewWaterway(f.Coordinates, f.Type == feature.Polygon)
		},
	},
	{
		match: func(p FeatureProperties, _ *feature.RawFeature) bool { return p.Has(IsBoundary) },
		build: func(f *feature.RawFeature) Shape { return NewBorder(f.Coordinates) },
	},
}

// Tessellator turns raw features into shapes.
type Tessellator struct {
	Classifier Classifier
}

// NewTessellator returns a Tessellator using c.
func NewTessellator(c Classifier) *Tessellator {
	return &Tessellator{Classifier: c}
}

// Build classifies f and constructs the shape selected for it, without
// touching any accumulator. It returns nil when no rule matches.
func (t *Tessellator) Build(f *feature.RawFeature) Shape {
	props := t.Classifier.Classify(f)
	for _, r := range rules {
		if r.match(props, f) {
			return r.build(f)
		}
	}
	return nil
}

// Tessellate builds the shape for f, queues it by z-index and folds its
// coordinates into bbox. Unmatched features return nil and leave bbox and
// shapes untouched.
func (t *Tessellator) Tessellate(f *feature.RawFeature, bbox *BoundingBox, shapes *ShapeQueue) Shape {
	shape := t.Build(f)
	if shape == nil {
		Logger().Debug("feature dropped", "id", f.ID, "type", f.Type.String())
		return nil
	}
	accumulate(shape, bbox, shapes)
	return shape
}

func accumulate(shape Shape, bbox *BoundingBox, shapes *ShapeQueue) {
	shapes.Push(shape, shape.ZIndex())
	for _, p := range shape.ScreenCoordinates() {
		bbox.Extend(p)
	}
}
