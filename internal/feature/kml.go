package feature

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords `xml:"outerBoundaryIs>LinearRing"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlPlacemark struct {
	ID         string      `xml:"id,attr"`
	Name       string      `xml:"name"`
	Point      *kmlCoords  `xml:"Point"`
	LineString *kmlCoords  `xml:"LineString"`
	Polygon    *kmlPolygon `xml:"Polygon"`
	Data       []kmlData   `xml:"ExtendedData>Data"`
}

// ReadKML extracts Placemarks with Point, LineString or Polygon geometry.
// ExtendedData entries and the placemark name become properties.
func ReadKML(r io.Reader) ([]*RawFeature, error) {
	var out []*RawFeature
	dec := xml.NewDecoder(r)
	n := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, err
		}
		n++
		f, err := pm.feature(n)
		if err != nil {
			return nil, err
		}
		if f != nil {
			out = append(out, f)
		}
	}
	return out, nil
}

func (pm kmlPlacemark) feature(n int) (*RawFeature, error) {
	props := map[string]string{}
	if pm.Name != "" {
		props["name"] = pm.Name
	}
	for _, d := range pm.Data {
		props[d.Name] = strings.TrimSpace(d.Value)
	}
	id := pm.ID
	if id == "" {
		id = strconv.Itoa(n)
	}

	f := &RawFeature{ID: id, Properties: props}
	var raw string
	switch {
	case pm.Polygon != nil:
		f.Type, raw = Polygon, pm.Polygon.Outer.Coordinates
	case pm.LineString != nil:
		f.Type, raw = Polyline, pm.LineString.Coordinates
	case pm.Point != nil:
		f.Type, raw = Point, pm.Point.Coordinates
	default:
		return nil, nil
	}
	pts, err := parseKMLCoords(raw)
	if err != nil {
		return nil, fmt.Errorf("placemark %s: %w", id, err)
	}
	f.Coordinates = pts
	return f, nil
}

// parseKMLCoords reads whitespace separated "lon,lat[,alt]" tuples; altitude
// is ignored.
func parseKMLCoords(s string) ([]orb.Point, error) {
	var pts []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("kml coordinate %q: expected lon,lat", tuple)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("kml coordinate %q: %w", tuple, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("kml coordinate %q: %w", tuple, err)
		}
		pts = append(pts, orb.Point{lon, lat})
	}
	if err := checkPoints(pts); err != nil {
		return nil, err
	}
	return pts, nil
}
