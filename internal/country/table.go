// Package country provides the reference table of country centroid
// coordinates and great-circle distance computation between countries.
package country

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Column headers required in the reference CSV. The upstream table
// carries more columns; anything beyond these three is ignored.
const (
	ColAlpha3    = "Alpha-3 code"
	ColLatitude  = "Latitude (average)"
	ColLongitude = "Longitude (average)"
)

// Load errors.
var (
	ErrMissingColumns = errors.New("reference table is missing required columns")
	ErrEmptyTable     = errors.New("reference table has no data rows")
)

// Centroid is the average latitude/longitude of a country's territory,
// in degrees.
type Centroid struct {
	Lat float64
	Lon float64
}

// Table maps uppercase alpha-3 country codes to centroids. A Table is
// built once by LoadTable or ParseTable and is read-only afterwards;
// it is safe to share by reference.
type Table struct {
	centroids map[string]Centroid
}

// LoadTable reads and parses the reference CSV at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference table: %w", err)
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// ParseTable parses reference CSV data into a Table.
//
// The upstream gist double-quotes its numeric fields, which leaves
// stray quote characters inside values after CSV parsing; every field
// is stripped of embedded quotes and surrounding whitespace before
// use. A row whose coordinates do not parse fails the whole load, so
// a Table is either complete or absent.
func ParseTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	centroids := make(map[string]Centroid)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++

		if len(row) <= cols.max() {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, cols.max()+1, len(row))
		}

		code := strings.ToUpper(cleanField(row[cols.code]))
		if code == "" {
			return nil, fmt.Errorf("line %d: empty country code", line)
		}

		lat, err := parseCoordinate(row[cols.lat])
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", line, err)
		}
		lon, err := parseCoordinate(row[cols.lon])
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", line, err)
		}

		centroids[code] = Centroid{Lat: lat, Lon: lon}
	}

	if len(centroids) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{centroids: centroids}, nil
}

// columnIndexes holds the positions of the three required columns.
type columnIndexes struct {
	code, lat, lon int
}

func (c columnIndexes) max() int {
	m := c.code
	if c.lat > m {
		m = c.lat
	}
	if c.lon > m {
		m = c.lon
	}
	return m
}

// locateColumns resolves required columns by header name.
func locateColumns(header []string) (columnIndexes, error) {
	idx := columnIndexes{code: -1, lat: -1, lon: -1}
	for i, name := range header {
		switch cleanField(name) {
		case ColAlpha3:
			idx.code = i
		case ColLatitude:
			idx.lat = i
		case ColLongitude:
			idx.lon = i
		}
	}

	var missing []string
	if idx.code < 0 {
		missing = append(missing, ColAlpha3)
	}
	if idx.lat < 0 {
		missing = append(missing, ColLatitude)
	}
	if idx.lon < 0 {
		missing = append(missing, ColLongitude)
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return idx, nil
}

// cleanField strips embedded quote characters and surrounding whitespace.
func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// parseCoordinate parses a latitude or longitude value after cleaning
// quoting artifacts.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(cleanField(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q as a coordinate: %w", s, err)
	}
	return v, nil
}

// Centroid returns the centroid for a code, looked up case-insensitively.
func (t *Table) Centroid(code string) (Centroid, bool) {
	c, ok := t.centroids[normalizeCode(code)]
	return c, ok
}

// Has reports whether the table contains the code.
func (t *Table) Has(code string) bool {
	_, ok := t.centroids[normalizeCode(code)]
	return ok
}

// Len returns the number of countries in the table.
func (t *Table) Len() int {
	return len(t.centroids)
}

// Codes returns all country codes in the table, sorted.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.centroids))
	for code := range t.centroids {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// normalizeCode uppercases and trims a lookup code so table entries and
// caller input compare case-insensitively.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
