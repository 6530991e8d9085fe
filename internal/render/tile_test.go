package render

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"

	"maptile/internal/feature"
)

func sampleFeatures() []*feature.RawFeature {
	return []*feature.RawFeature{
		newFeature(feature.Polyline, map[string]string{"highway": "primary"}, orb.Point{0, 0}, orb.Point{10, 10}),
		newFeature(feature.Polygon, map[string]string{"water": "lake"}, orb.Point{2, 2}, orb.Point{4, 2}, orb.Point{4, 4}),
		newFeature(feature.Polyline, map[string]string{"boundary": "administrative"}, orb.Point{0, 10}, orb.Point{10, 0}),
		newFeature(feature.Point, map[string]string{"amenity": "cafe"}, orb.Point{5, 5}),
		newFeature(feature.Polyline, map[string]string{"highway": "service"}, orb.Point{-50, 0}, orb.Point{50, 0}),
	}
}

func TestTileStats(t *testing.T) {
	is := is.New(t)
	tile := NewTile(Options{Classifier: DefaultClassifier()})
	tile.AddAll(sampleFeatures())

	img, err := tile.Render(40, 40)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 40)

	stats := tile.Stats()
	is.Equal(stats.Features, 5)
	is.Equal(stats.Dropped, 2)
	is.Equal(stats.PerKind[KindRoad], 1)
	is.Equal(stats.PerKind[KindWaterway], 1)
	is.Equal(stats.PerKind[KindBorder], 1)
	is.Equal(stats.Drawn, 3)
	is.Equal(stats.Skipped, 0)
	is.Equal(stats.Box, BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10})
}

func TestTileRendersOnce(t *testing.T) {
	is := is.New(t)
	tile := NewTile(Options{Classifier: DefaultClassifier()})
	tile.AddAll(sampleFeatures())

	_, err := tile.Render(10, 10)
	is.NoErr(err)

	_, err = tile.Render(10, 10)
	is.Equal(err, ErrTileRendered)
	is.True(!tile.Add(sampleFeatures()[0])) // ignored after render
}

func TestTileInvalidSize(t *testing.T) {
	is := is.New(t)
	tile := NewTile(Options{Classifier: DefaultClassifier()})

	_, err := tile.Render(0, 10)
	is.Equal(err, ErrInvalidSize)

	_, err = tile.Render(10, 10)
	is.NoErr(err) // a rejected size does not consume the tile
}

func TestTileKindFilter(t *testing.T) {
	is := is.New(t)
	tile := NewTile(Options{Classifier: DefaultClassifier(), Kinds: []Kind{KindWaterway}})

	fs := sampleFeatures()
	is.True(!tile.Add(fs[0]))
	is.True(tile.Add(fs[1]))
	is.True(!tile.Add(fs[2]))

	is.Equal(tile.BoundingBox(), BoundingBox{MinX: 2, MaxX: 4, MinY: 2, MaxY: 4})
	is.Equal(tile.Stats().Dropped, 2)
}
