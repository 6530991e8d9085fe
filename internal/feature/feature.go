package feature

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// GeometryType is the geometry kind of a raw feature.
type GeometryType int

const (
	Point GeometryType = iota
	Polyline
	Polygon
)

func (t GeometryType) String() string {
	switch t {
	case Point:
		return "point"
	case Polyline:
		return "polyline"
	case Polygon:
		return "polygon"
	}
	return fmt.Sprintf("GeometryType(%d)", int(t))
}

// RawFeature is one decoded map feature: a geometry type, ordered lon/lat
// coordinates and a flat string property bag. Renderers only read it.
type RawFeature struct {
	ID          string
	Type        GeometryType
	Coordinates []orb.Point // lon, lat
	Properties  map[string]string
}

// Bound returns the lon/lat extent of the feature's coordinates.
// A feature without coordinates yields the zero bound and false.
func (f *RawFeature) Bound() (orb.Bound, bool) {
	if len(f.Coordinates) == 0 {
		return orb.Bound{}, false
	}
	return orb.MultiPoint(f.Coordinates).Bound(), true
}

// ErrNonFiniteCoordinate is returned by loaders for NaN or infinite
// coordinates.
var ErrNonFiniteCoordinate = errors.New("non-finite coordinate")

func checkPoints(pts []orb.Point) error {
	for _, p := range pts {
		if math.IsNaN(p[0]) || math.IsInf(p[0], 0) || math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
			return fmt.Errorf("%w: (%g %g)", ErrNonFiniteCoordinate, p[0], p[1])
		}
	}
	return nil
}

// checkFinite walks every coordinate of g.
func checkFinite(g orb.Geometry) error {
	switch g := g.(type) {
	case orb.Point:
		return checkPoints([]orb.Point{g})
	case orb.MultiPoint:
		return checkPoints(g)
	case orb.LineString:
		return checkPoints(g)
	case orb.Ring:
		return checkPoints(g)
	case orb.MultiLineString:
		for _, ls := range g {
			if err := checkPoints(ls); err != nil {
				return err
			}
		}
	case orb.Polygon:
		for _, r := range g {
			if err := checkPoints(r); err != nil {
				return err
			}
		}
	case orb.MultiPolygon:
		for _, p := range g {
			if err := checkFinite(p); err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, part := range g {
			if err := checkFinite(part); err != nil {
				return err
			}
		}
	case orb.Bound:
		return checkPoints([]orb.Point{g.Min, g.Max})
	}
	return nil
}
