// Package dataset materializes the raw LFB animal rescue file into the
// table abstraction and writes the cleaned table back out.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// numericColumns are coerced to float64 at ingest; everything else stays a
// string. Values that do not parse keep their raw string form so the
// responsible pass can report them with row context.
var numericColumns = map[string]bool{
	domain.ColEastingM:           true,
	domain.ColNorthingM:          true,
	domain.ColEastingRounded:     true,
	domain.ColNorthingRounded:    true,
	domain.ColLatitude:           true,
	domain.ColLongitude:          true,
	domain.ColPumpCount:          true,
	domain.ColPumpHoursTotal:     true,
	domain.ColHourlyNotionalCost: true,
	domain.ColIncidentCost:       true,
	domain.ColCalYear:            true,
	domain.ColUPRN:               true,
	domain.ColUSRN:               true,
}

// Load reads a dataset file into a table, choosing the decoder by
// extension (.csv or .xlsx).
func Load(path string) (*domain.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSVFile(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported dataset extension %q (want .csv or .xlsx)", ext)
	}
}

// LoadCSVFile reads a CSV file into a table.
func LoadCSVFile(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV reads CSV content into a table. The first record is the header.
func LoadCSV(r io.Reader) (*domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return buildTable(records)
}

// buildTable converts header+rows string records into a typed table.
func buildTable(records [][]string) (*domain.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = normalizeHeader(h)
	}
	tbl, err := domain.NewTable(columns)
	if err != nil {
		return nil, fmt.Errorf("dataset header: %w", err)
	}

	for n, record := range records[1:] {
		cells := make([]any, len(columns))
		for i := range columns {
			var raw string
			if i < len(record) {
				raw = record[i]
			}
			cells[i] = coerceCell(columns[i], raw)
		}
		if err := tbl.AppendRow(cells); err != nil {
			return nil, fmt.Errorf("dataset row %d: %w", n+1, err)
		}
	}
	return tbl, nil
}

// normalizeHeader maps published header spellings ("PumpCount",
// "Easting_rounded") onto the snake_case column names the pipeline uses.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	var b strings.Builder
	for i, r := range h {
		switch {
		case r == ' ' || r == '-':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 && h[i-1] != '_' && h[i-1] != ' ' && !(h[i-1] >= 'A' && h[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// coerceCell turns a raw string cell into its typed form. Empty strings
// and the dataset's "NULL" sentinel become missing values.
func coerceCell(column, raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil
	}
	if numericColumns[column] {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return raw
}
