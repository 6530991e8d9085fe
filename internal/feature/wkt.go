package feature

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKTFeature parses one WKT geometry optionally followed by tags:
//
//	LINESTRING(0 0, 1 1); highway=primary; name=Main Street
//
// Multi geometries and collections are split into one feature per part;
// polygons keep their outer ring.
func ParseWKTFeature(s string) ([]*RawFeature, error) {
	parts := strings.Split(s, ";")
	props := map[string]string{}
	for _, kv := range parts[1:] {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("wkt tag %q: expected key=value", kv)
		}
		props[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	g, err := ParseWKT(parts[0])
	if err != nil {
		return nil, err
	}
	return fromGeometry("", g, props), nil
}

// ParseWKT parses a WKT geometry. Coordinates must be finite.
func ParseWKT(s string) (orb.Geometry, error) {
	g, err := wkt.Unmarshal(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	if err := checkFinite(g); err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	return g, nil
}

// ReadWKT reads one tagged WKT feature per line. Blank lines and lines
// starting with '#' are ignored.
func ReadWKT(r io.Reader) ([]*RawFeature, error) {
	var out []*RawFeature
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fs, err := ParseWKTFeature(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for i, f := range fs {
			f.ID = strconv.Itoa(line)
			if len(fs) > 1 {
				f.ID = fmt.Sprintf("%d/%d", line, i+1)
			}
		}
		out = append(out, fs...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
