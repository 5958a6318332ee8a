// table.go: the pre-computed daily longitude table.
//
// The table is an immutable object constructed once at startup and injected
// into the Provider; there is no lazily-parsed global state. Schema: one CSV
// row per UTC day, a date column followed by one longitude column per body in
// TableBodies order, degrees as floating point [0,360).
package ephemeris

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/soluna/temple-go/internal/errors"
)

const tableDateLayout = "2006-01-02"

// Table is an immutable day-indexed table of longitudes for the ten TableBodies.
type Table struct {
	start time.Time   // first covered UTC day, midnight
	rows  [][]float64 // one row per day, len(TableBodies) columns
}

// Window returns the inclusive first and last UTC days covered by the table.
func (tb *Table) Window() (start, end time.Time) {
	return tb.start, tb.start.AddDate(0, 0, len(tb.rows)-1)
}

// Len returns the number of day rows in the table.
func (tb *Table) Len() int {
	return len(tb.rows)
}

// Lookup returns the longitudes for the UTC day containing t. Time of day is
// ignored: table lookups are day-granular by design, which keeps results
// identical for any instant within the same day. The second return value is
// false when the day falls outside the table window.
func (tb *Table) Lookup(t time.Time) ([]float64, bool) {
	if tb == nil || len(tb.rows) == 0 {
		return nil, false
	}
	day := t.UTC().Truncate(24 * time.Hour)
	idx := int(day.Sub(tb.start).Hours() / 24)
	if idx < 0 || idx >= len(tb.rows) {
		return nil, false
	}
	return tb.rows[idx], true
}

// GenerateTable builds a table from the analytic model, one row per UTC day
// from start through end inclusive, sampling each day at midnight. This is how
// the shipped table asset is produced; any table honoring the schema may be
// substituted.
func GenerateTable(start, end time.Time) (*Table, error) {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return nil, errors.Newf("table window end %s before start %s", end.Format(tableDateLayout), start.Format(tableDateLayout)).
			Category(errors.CategoryEphemerisTable).
			Component("ephemeris").
			Build()
	}

	days := int(end.Sub(start).Hours()/24) + 1
	rows := make([][]float64, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		row := make([]float64, len(TableBodies))
		for col, body := range TableBodies {
			lon, err := ComputeLongitude(body, day)
			if err != nil {
				return nil, fmt.Errorf("computing %s for %s: %w", body, day.Format(tableDateLayout), err)
			}
			row[col] = lon
		}
		rows = append(rows, row)
	}
	return &Table{start: start, rows: rows}, nil
}

// LoadTable reads a table from a CSV file on disk.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			Component("ephemeris").
			Context("path", path).
			Build()
	}
	defer f.Close()
	return ReadTable(f)
}

// ReadTable parses the CSV table schema from r. Rows must cover consecutive
// days; gaps are rejected so that day-offset indexing stays exact.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryEphemerisTable).
			Component("ephemeris").
			Build()
	}
	if len(records) < 2 {
		return nil, errors.Newf("table has no data rows").
			Category(errors.CategoryEphemerisTable).
			Component("ephemeris").
			Build()
	}

	// First record is the header; validate column count only.
	wantCols := len(TableBodies) + 1
	if len(records[0]) != wantCols {
		return nil, errors.Newf("table header has %d columns, want %d", len(records[0]), wantCols).
			Category(errors.CategoryEphemerisTable).
			Component("ephemeris").
			Build()
	}

	var start time.Time
	rows := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != wantCols {
			return nil, errors.Newf("row %d has %d columns, want %d", i+1, len(rec), wantCols).
				Category(errors.CategoryEphemerisTable).
				Component("ephemeris").
				Build()
		}
		day, err := time.ParseInLocation(tableDateLayout, rec[0], time.UTC)
		if err != nil {
			return nil, errors.Newf("row %d has invalid date %q: %v", i+1, rec[0], err).
				Category(errors.CategoryEphemerisTable).
				Component("ephemeris").
				Build()
		}
		if i == 0 {
			start = day
		} else if !day.Equal(start.AddDate(0, 0, i)) {
			return nil, errors.Newf("row %d date %s breaks consecutive day ordering", i+1, rec[0]).
				Category(errors.CategoryEphemerisTable).
				Component("ephemeris").
				Build()
		}
		row := make([]float64, len(TableBodies))
		for col := range TableBodies {
			v, err := strconv.ParseFloat(rec[col+1], 64)
			if err != nil || v < 0 || v >= 360 {
				return nil, errors.Newf("row %d column %d has invalid longitude %q", i+1, col+1, rec[col+1]).
					Category(errors.CategoryEphemerisTable).
					Component("ephemeris").
					Build()
			}
			row[col] = v
		}
		rows = append(rows, row)
	}
	return &Table{start: start, rows: rows}, nil
}

// WriteCSV writes the table in its external CSV schema.
func (tb *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(TableBodies)+1)
	header = append(header, "date")
	for _, body := range TableBodies {
		header = append(header, string(body))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range tb.rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, tb.start.AddDate(0, 0, i).Format(tableDateLayout))
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
