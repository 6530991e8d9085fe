package feature

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON decodes a GeoJSON FeatureCollection, a single Feature or a
// bare geometry. Multi geometries become one RawFeature per part; polygons
// keep their outer ring only.
func ParseGeoJSON(data []byte) ([]*RawFeature, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		return FromFeatureCollection(fc), nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		return fromGeoJSONFeature(f, 0), nil
	case "":
		return nil, fmt.Errorf("invalid geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		return fromGeometry("", g.Geometry(), nil), nil
	}
}

// FromFeatureCollection converts every feature of fc.
func FromFeatureCollection(fc *geojson.FeatureCollection) []*RawFeature {
	var out []*RawFeature
	for i, f := range fc.Features {
		out = append(out, fromGeoJSONFeature(f, i)...)
	}
	return out
}

func fromGeoJSONFeature(f *geojson.Feature, index int) []*RawFeature {
	id := featureID(f.ID, index)
	return fromGeometry(id, f.Geometry, flattenProperties(f.Properties))
}

func featureID(v any, index int) string {
	switch id := v.(type) {
	case nil:
		return strconv.Itoa(index)
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}

func fromGeometry(id string, g orb.Geometry, props map[string]string) []*RawFeature {
	mk := func(suffix int, t GeometryType, pts []orb.Point) *RawFeature {
		fid := id
		if suffix > 0 {
			fid = fmt.Sprintf("%s/%d", id, suffix)
		}
		return &RawFeature{ID: fid, Type: t, Coordinates: pts, Properties: props}
	}

	switch g := g.(type) {
	case orb.Point:
		return []*RawFeature{mk(0, Point, []orb.Point{g})}
	case orb.MultiPoint:
		var out []*RawFeature
		for i, p := range g {
			out = append(out, mk(i+1, Point, []orb.Point{p}))
		}
		return out
	case orb.LineString:
		return []*RawFeature{mk(0, Polyline, []orb.Point(g))}
	case orb.MultiLineString:
		var out []*RawFeature
		for i, ls := range g {
			out = append(out, mk(i+1, Polyline, []orb.Point(ls)))
		}
		return out
	case orb.Ring:
		return []*RawFeature{mk(0, Polygon, []orb.Point(g))}
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		return []*RawFeature{mk(0, Polygon, []orb.Point(g[0]))}
	case orb.MultiPolygon:
		var out []*RawFeature
		for i, poly := range g {
			if len(poly) == 0 {
				continue
			}
			out = append(out, mk(i+1, Polygon, []orb.Point(poly[0])))
		}
		return out
	case orb.Collection:
		var out []*RawFeature
		for i, part := range g {
			out = append(out, fromGeometry(fmt.Sprintf("%s/%d", id, i+1), part, props)...)
		}
		return out
	}
	return nil
}

// flattenProperties turns GeoJSON properties into a string bag. A nested
// "tags" object, as written by osmgeojson, is merged into the top level.
func flattenProperties(p map[string]any) map[string]string {
	out := make(map[string]string, len(p))
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := p[k].(type) {
		case map[string]string:
			if k == "tags" {
				for tk, tv := range v {
					out[tk] = tv
				}
				continue
			}
			out[k] = stringify(v)
		case map[string]any:
			if k == "tags" {
				for tk, tv := range v {
					out[tk] = stringify(tv)
				}
				continue
			}
			out[k] = stringify(v)
		default:
			out[k] = stringify(v)
		}
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
