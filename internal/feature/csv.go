package feature

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads features from a CSV whose header names a geometry column
// (wkt|geometry|geom|the_geom, case-insensitive). Every other non-empty
// column becomes a property. An id column, when present, names the feature.
func ReadCSV(r io.Reader) ([]*RawFeature, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	header := recs[0]
	idxGeom, idxID := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "wkt", "geometry", "geom", "the_geom":
			if idxGeom == -1 {
				idxGeom = i
			}
		case "id":
			if idxID == -1 {
				idxID = i
			}
		}
	}
	if idxGeom == -1 {
		return nil, errors.New("csv: geometry column not found")
	}

	var out []*RawFeature
	for n, row := range recs[1:] {
		if idxGeom >= len(row) {
			continue
		}
		g, err := ParseWKT(row[idxGeom])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		props := map[string]string{}
		for i, v := range row {
			if i == idxGeom || i == idxID || i >= len(header) || v == "" {
				continue
			}
			props[header[i]] = strings.TrimSpace(v)
		}
		id := strconv.Itoa(n + 1)
		if idxID >= 0 && idxID < len(row) {
			id = row[idxID]
		}
		out = append(out, fromGeometry(id, g, props)...)
	}
	return out, nil
}
