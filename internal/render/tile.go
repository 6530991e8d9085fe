package render

import (
	"errors"
	"image"

	"maptile/internal/feature"
)

var (
	// ErrTileRendered is returned when a tile is rendered a second time.
	ErrTileRendered = errors.New("tile already rendered")
	// ErrInvalidSize is returned for a canvas without pixels.
	ErrInvalidSize = errors.New("canvas size must be positive")
)

// Stats counts what happened to a tile's features.
type Stats struct {
	Features int
	Dropped  int
	PerKind  map[Kind]int
	Drawn    int
	Skipped  int
	Box      BoundingBox
}

// Options configures a Tile.
type Options struct {
	Classifier Classifier
	// Kinds restricts which shape kinds are kept. Features whose selected
	// shape is not listed are dropped as if nothing matched. Nil keeps all.
	Kinds []Kind
}

// Tile owns the state of one tile render: the running bounding box and the
// shape queue. It is not safe for concurrent use and renders only once.
type Tile struct {
	tess     *Tessellator
	kinds    map[Kind]bool
	bbox     BoundingBox
	shapes   *ShapeQueue
	stats    Stats
	rendered bool
}

// NewTile returns an empty tile.
func NewTile(opts Options) *Tile {
	t := &Tile{
		tess:   NewTessellator(opts.Classifier),
		bbox:   NewBoundingBox(),
		shapes: NewShapeQueue(),
		stats:  Stats{PerKind: map[Kind]int{}},
	}
	if opts.Kinds != nil {
		t.kinds = map[Kind]bool{}
		for _, k := range opts.Kinds {
			t.kinds[k] = true
		}
	}
	return t
}

// Add tessellates f into the tile and reports whether a shape was kept.
// Features added after Render are ignored.
func (t *Tile) Add(f *feature.RawFeature) bool {
	if t.rendered {
		return false
	}
	t.stats.Features++

	shape := t.tess.Build(f)
	if shape != nil && t.kinds != nil && !t.kinds[shape.Kind()] {
		shape = nil
	}
	if shape == nil {
		t.stats.Dropped++
		Logger().Debug("feature dropped", "id", f.ID, "type", f.Type.String())
		return false
	}

	accumulate(shape, &t.bbox, t.shapes)
	t.stats.PerKind[shape.Kind()]++
	return true
}

// AddAll adds every feature in fs.
func (t *Tile) AddAll(fs []*feature.RawFeature) {
	for _, f := range fs {
		t.Add(f)
	}
}

// BoundingBox returns the extent accumulated so far.
func (t *Tile) BoundingBox() BoundingBox {
	return t.bbox
}

// Render drains the tile onto a new width x height image.
func (t *Tile) Render(width, height int) (*image.RGBA, error) {
	if t.rendered {
		return nil, ErrTileRendered
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	t.rendered = true

	c := NewCanvas(width, height)
	c.Fill(Background)
	t.stats.Drawn, t.stats.Skipped = Draw(c, t.shapes, t.bbox, width, height)
	t.stats.Box = t.bbox
	t.shapes = nil
	return c.Image(), nil
}

// Stats returns a snapshot of the tile's counters.
func (t *Tile) Stats() Stats {
	s := t.stats
	s.Box = t.bbox
	s.PerKind = make(map[Kind]int, len(t.stats.PerKind))
	for k, v := range t.stats.PerKind {
		s.PerKind[k] = v
	}
	return s
}
