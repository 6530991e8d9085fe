package feature

import (
	"encoding/xml"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
)

// ParseOSM decodes an OSM XML document. Nodes and ways are assembled into
// GeoJSON geometries by osmgeojson; closed area ways become polygons. Element
// tags become the feature properties.
func ParseOSM(data []byte) ([]*RawFeature, error) {
	o := &osm.OSM{}
	if err := xml.Unmarshal(data, o); err != nil {
		return nil, err
	}
	return FromOSM(o)
}

// FromOSM converts already decoded OSM data.
func FromOSM(o *osm.OSM) ([]*RawFeature, error) {
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, err
	}

	var out []*RawFeature
	for i, f := range fc.Features {
		props := map[string]string{}
		if tags, ok := f.Properties["tags"].(map[string]string); ok {
			for k, v := range tags {
				props[k] = v
			}
		}
		out = append(out, fromGeometry(featureID(f.ID, i), f.Geometry, props)...)
	}
	return out, nil
}
