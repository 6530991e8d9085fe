package feature

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an input encoding.
type Format string

const (
	FormatGeoJSON Format = "geojson"
	FormatOSM     Format = "osm"
	FormatWKT     Format = "wkt"
	FormatCSV     Format = "csv"
	FormatKML     Format = "kml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoFeatures        = errors.New("no features found")
)

// LoadError reports a failure to load a feature file.
type LoadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *LoadError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return FormatGeoJSON, true
	case ".osm", ".xml":
		return FormatOSM, true
	case ".wkt", ".txt":
		return FormatWKT, true
	case ".csv":
		return FormatCSV, true
	case ".kml":
		return FormatKML, true
	}
	return "", false
}

// IsSupported reports whether path has a loadable extension.
func IsSupported(path string) bool {
	_, ok := FormatFromPath(path)
	return ok
}

// Load reads every feature from the file at path.
func Load(path string) ([]*RawFeature, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, &LoadError{Path: path, Err: ErrUnsupportedFormat}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Format: format, Err: err}
	}
	defer f.Close()

	fs, err := LoadReader(f, format)
	if err != nil {
		return nil, &LoadError{Path: path, Format: format, Err: err}
	}
	return fs, nil
}

// LoadReader reads every feature from r in the given format.
func LoadReader(r io.Reader, format Format) ([]*RawFeature, error) {
	var (
		fs  []*RawFeature
		err error
	)
	switch format {
	case FormatGeoJSON, FormatOSM:
		data, rerr := io.ReadAll(r)
		if rerr != nil {
			return nil, rerr
		}
		if format == FormatGeoJSON {
			fs, err = ParseGeoJSON(bytes.TrimSpace(data))
		} else {
			fs, err = ParseOSM(data)
		}
	case FormatWKT:
		fs, err = ReadWKT(r)
	case FormatCSV:
		fs, err = ReadCSV(r)
	case FormatKML:
		fs, err = ReadKML(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(fs) == 0 {
		return nil, ErrNoFeatures
	}
	return fs, nil
}
