package dataset

import (
	"fmt"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the first sheet of a spreadsheet into a table. The LFB
// publishes the dataset as a single-sheet workbook.
func LoadXLSX(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return buildTable(rows)
}
