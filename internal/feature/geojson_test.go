package feature

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "r1",
     "geometry": {"type": "LineString", "coordinates": [[13.40, 52.52], [13.41, 52.53]]},
     "properties": {"highway": "primary", "lanes": 2, "oneway": true}},
    {"type": "Feature",
     "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]], [[0.2, 0.2], [0.3, 0.2], [0.3, 0.3], [0.2, 0.2]]]},
     "properties": {"water": "lake", "tags": {"name": "Tegeler See"}}},
    {"type": "Feature",
     "geometry": {"type": "MultiLineString", "coordinates": [[[0, 0], [1, 1]], [[2, 2], [3, 3]]]},
     "properties": {"boundary": "administrative"}},
    {"type": "Feature",
     "geometry": {"type": "Point", "coordinates": [5, 6]},
     "properties": null}
  ]
}`

func TestParseGeoJSONCollection(t *testing.T) {
	is := is.New(t)

	fs, err := ParseGeoJSON([]byte(sampleCollection))
	is.NoErr(err)
	is.Equal(len(fs), 5)

	road := fs[0]
	is.Equal(road.ID, "r1")
	is.Equal(road.Type, Polyline)
	is.Equal(road.Coordinates, []orb.Point{{13.40, 52.52}, {13.41, 52.53}})
	is.Equal(road.Properties, map[string]string{"highway": "primary", "lanes": "2", "oneway": "true"})

	lake := fs[1]
	is.Equal(lake.Type, Polygon)
	is.Equal(len(lake.Coordinates), 4) // outer ring only
	is.Equal(lake.Properties["name"], "Tegeler See")
	is.Equal(lake.Properties["water"], "lake")

	is.Equal(fs[2].ID, "2/1")
	is.Equal(fs[3].ID, "2/2")
	is.Equal(fs[3].Properties["boundary"], "administrative")

	is.Equal(fs[4].Type, Point)
	is.Equal(len(fs[4].Properties), 0)
}

func TestParseGeoJSONSingleFeatureAndGeometry(t *testing.T) {
	is := is.New(t)

	fs, err := ParseGeoJSON([]byte(`{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{"waterway":"river"}}`))
	is.NoErr(err)
	is.Equal(len(fs), 1)
	is.Equal(fs[0].Properties["waterway"], "river")

	fs, err = ParseGeoJSON([]byte(`{"type":"MultiPoint","coordinates":[[0,0],[1,1]]}`))
	is.NoErr(err)
	is.Equal(len(fs), 2)
	is.Equal(fs[1].Type, Point)

	_, err = ParseGeoJSON([]byte(`{"coordinates":[]}`))
	is.True(err != nil)
}

func TestFeatureBound(t *testing.T) {
	is := is.New(t)

	f := &RawFeature{Coordinates: []orb.Point{{1, 5}, {-2, 3}, {4, 4}}}
	b, ok := f.Bound()
	is.True(ok)
	is.Equal(b, orb.Bound{Min: orb.Point{-2, 3}, Max: orb.Point{4, 5}})

	_, ok = (&RawFeature{}).Bound()
	is.True(!ok)
}
