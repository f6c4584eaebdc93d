package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// OutputTimestampLayout is how parsed timestamps render in the cleaned CSV.
const OutputTimestampLayout = "2006-01-02 15:04:05"

// WriteCSVFile writes a table to a CSV file, header first.
func WriteCSVFile(tbl *domain.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteCSV(tbl, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes a table as CSV, header first.
func WriteCSV(tbl *domain.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(tbl.Columns()))
	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		for j, cell := range row {
			record[j] = formatCell(cell)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case time.Time:
		return v.Format(OutputTimestampLayout)
	default:
		return fmt.Sprintf("%v", v)
	}
}
