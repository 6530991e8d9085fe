package render

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"

	"maptile/internal/feature"
)

func TestTessellateHighwayWinsOverOtherBits(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())

	for _, typ := range []feature.GeometryType{feature.Point, feature.Polyline, feature.Polygon} {
		f := newFeature(typ, map[string]string{
			"highway":  "motorway",
			"waterway": "river",
			"boundary": "administrative",
		}, line()...)

		bbox := NewBoundingBox()
		q := NewShapeQueue()
		shape := tess.Tessellate(f, &bbox, q)

		_, isRoad := shape.(*Road)
		is.True(isRoad) // highway always produces a road
		is.Equal(q.Len(), 1)
	}
}

func TestTessellatePointNeverBecomesWaterway(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())

	bbox := NewBoundingBox()
	q := NewShapeQueue()
	f := newFeature(feature.Point, map[string]string{"water": "pond"}, orb.Point{3, 4})
	is.Equal(tess.Tessellate(f, &bbox, q), nil)

	f = newFeature(feature.Point, map[string]string{"waterway": "spring", "boundary": "administrative"}, orb.Point{3, 4})
	shape := tess.Tessellate(f, &bbox, q)
	_, isBorder := shape.(*Border)
	is.True(isBorder) // falls through to the boundary rule
}

func TestTessellateWaterwayClosedFlag(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())
	bbox := NewBoundingBox()
	q := NewShapeQueue()

	ring := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	poly := tess.Tessellate(newFeature(feature.Polygon, map[string]string{"water": "lake"}, ring...), &bbox, q)
	open := tess.Tessellate(newFeature(feature.Polyline, map[string]string{"waterway": "stream"}, ring...), &bbox, q)

	is.True(poly.(*Waterway).Closed)
	is.True(!open.(*Waterway).Closed)
	is.Equal(len(poly.ScreenCoordinates()), len(ring))
}

func TestTessellateUnmatchedIsIdentity(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())

	bbox := NewBoundingBox()
	q := NewShapeQueue()
	f := newFeature(feature.Polygon, map[string]string{"building": "yes", "railway": "rail"}, line()...)

	is.Equal(tess.Tessellate(f, &bbox, q), nil)
	is.Equal(bbox, NewBoundingBox())
	is.True(bbox.IsEmpty())
	is.Equal(q.Len(), 0)
}

func TestTessellateFoldsBoundingBox(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())
	bbox := NewBoundingBox()
	q := NewShapeQueue()

	tess.Tessellate(newFeature(feature.Polyline, map[string]string{"highway": "primary"},
		orb.Point{2, -1}, orb.Point{5, 3}), &bbox, q)
	tess.Tessellate(newFeature(feature.Polyline, map[string]string{"boundary": "administrative"},
		orb.Point{-4, 0}, orb.Point{1, 7}), &bbox, q)

	is.Equal(bbox, BoundingBox{MinX: -4, MaxX: 5, MinY: -1, MaxY: 7})
	is.Equal(q.Len(), 2)
}

func TestTessellateBoundingBoxIdempotent(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())
	f := newFeature(feature.Polyline, map[string]string{"highway": "secondary"},
		orb.Point{13.4, 52.5}, orb.Point{13.5, 52.4}, orb.Point{13.3, 52.6})

	a, b := NewBoundingBox(), NewBoundingBox()
	tess.Tessellate(f, &a, NewShapeQueue())
	tess.Tessellate(f, &b, NewShapeQueue())

	is.Equal(a, b)
	is.Equal(a, BoundingBox{MinX: 13.3, MaxX: 13.5, MinY: 52.4, MaxY: 52.6})
}

func TestTessellateEmptyCoordinates(t *testing.T) {
	is := is.New(t)
	tess := NewTessellator(DefaultClassifier())
	bbox := NewBoundingBox()
	q := NewShapeQueue()

	shape := tess.Tessellate(newFeature(feature.Polyline, map[string]string{"highway": "road"}), &bbox, q)
	is.True(shape != nil)
	is.Equal(len(shape.ScreenCoordinates()), 0)
	is.True(bbox.IsEmpty())
	is.Equal(q.Len(), 1)
}

func TestTranslateAndScaleFlipsY(t *testing.T) {
	is := is.New(t)
	r := NewRoad([]orb.Point{{10, 20}, {30, 70}})

	r.TranslateAndScale(10, 20, 2, 100)

	is.Equal(r.ScreenCoordinates(), []Point{{X: 0, Y: 100}, {X: 40, Y: 0}})
}
