package render

import (
	"strings"

	"maptile/internal/feature"
)

// FeatureProperties is the set of semantic properties recognized on a feature.
type FeatureProperties uint8

const (
	HasHighway FeatureProperties = 1 << iota
	IsWaterway
	IsBoundary
	IsRailway // reserved, no shape uses it yet
)

// None is the empty property set.
const None FeatureProperties = 0

// Has reports whether every bit of flag is set.
func (p FeatureProperties) Has(flag FeatureProperties) bool {
	return p&flag == flag && flag != 0
}

func (p FeatureProperties) String() string {
	if p == None {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		flag FeatureProperties
		name string
	}{
		{HasHighway, "highway"},
		{IsWaterway, "waterway"},
		{IsBoundary, "boundary"},
		{IsRailway, "railway"},
	} {
		if p.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// DefaultHighwayTypes are the highway value prefixes recognized as roads.
var DefaultHighwayTypes = []string{
	"motorway",
	"trunk",
	"primary",
	"secondary",
	"tertiary",
	"unclassified",
	"residential",
	"road",
}

// BoundaryFunc decides whether a feature is a boundary.
type BoundaryFunc func(f *feature.RawFeature) bool

// TagPrefixBoundary builds a boundary predicate matching any property whose
// key starts with keyPrefix and whose value starts with valuePrefix.
func TagPrefixBoundary(keyPrefix, valuePrefix string) BoundaryFunc {
	return func(f *feature.RawFeature) bool {
		for k, v := range f.Properties {
			if strings.HasPrefix(k, keyPrefix) && strings.HasPrefix(v, valuePrefix) {
				return true
			}
		}
		return false
	}
}

// AdministrativeBoundary matches boundary=administrative* tags.
var AdministrativeBoundary = TagPrefixBoundary("boundary", "administrative")

// Classifier maps a feature's property bag to FeatureProperties.
// The zero value recognizes no highways and no boundaries.
type Classifier struct {
	HighwayTypes []string
	IsBoundary   BoundaryFunc
}

// DefaultClassifier returns a classifier using DefaultHighwayTypes and
// AdministrativeBoundary.
func DefaultClassifier() Classifier {
	return Classifier{
		HighwayTypes: DefaultHighwayTypes,
		IsBoundary:   AdministrativeBoundary,
	}
}

// Classify evaluates every rule independently; several bits may be set.
func (c Classifier) Classify(f *feature.RawFeature) FeatureProperties {
	props := None

	if v, ok := f.Properties["highway"]; ok && c.isHighwayType(v) {
		props |= HasHighway
	}

	if f.Type != feature.Point {
		for k := range f.Properties {
			if strings.HasPrefix(k, "water") {
				props |= IsWaterway
				break
			}
		}
	}

	if c.IsBoundary != nil && c.IsBoundary(f) {
		props |= IsBoundary
	}

	return props
}

func (c Classifier) isHighwayType(v string) bool {
	for _, t := range c.HighwayTypes {
		if strings.HasPrefix(v, t) {
			return true
		}
	}
	return false
}
