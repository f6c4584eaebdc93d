package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// CallTimestampLayout is the fixed day-first layout of date_time_of_call,
// e.g. "31/05/2022 18:38".
const CallTimestampLayout = "02/01/2006 15:04"

// TemporalParser converts a string timestamp column into time.Time values.
// The dataset is assumed format-consistent: any nonconforming string is a
// fatal error for the pass, with no per-row recovery.
type TemporalParser struct {
	column string
	layout string
}

// NewTemporalParser creates the pass for the given column and layout.
func NewTemporalParser(column, layout string) *TemporalParser {
	return &TemporalParser{column: column, layout: layout}
}

func (p *TemporalParser) Name() string { return "temporal_parser" }

func (p *TemporalParser) Apply(tbl *domain.Table) error {
	idx, ok := tbl.ColumnIndex(p.column)
	if !ok {
		return &domain.MissingColumnError{Pass: p.Name(), Column: p.column}
	}
	for i := 0; i < tbl.NumRows(); i++ {
		cell := tbl.At(i, idx)
		switch v := cell.(type) {
		case nil:
			// Missing timestamps stay missing.
		case time.Time:
			// Already parsed; reapplying the pass is a no-op.
		case string:
			ts, err := time.Parse(p.layout, v)
			if err != nil {
				return &domain.MalformedTimestampError{
					Pass:   p.Name(),
					Row:    i,
					Column: p.column,
					Value:  v,
					Err:    err,
				}
			}
			tbl.Set(i, idx, ts)
		default:
			return &domain.MalformedTimestampError{
				Pass:   p.Name(),
				Row:    i,
				Column: p.column,
				Value:  fmt.Sprintf("%v", v),
				Err:    fmt.Errorf("unexpected cell type %T", v),
			}
		}
	}
	return nil
}

// TemporalExpander derives calendar feature columns from the parsed
// timestamp column: year (int), month (ordered categorical label),
// dayofweek (ordered categorical label, Monday first), and hour (0–23).
// It requires TemporalParser to have run; a string cell here means the
// passes ran out of order and is fatal.
type TemporalExpander struct {
	column string
}

// NewTemporalExpander creates the pass over the given timestamp column.
func NewTemporalExpander(column string) *TemporalExpander {
	return &TemporalExpander{column: column}
}

func (p *TemporalExpander) Name() string { return "temporal_expander" }

func (p *TemporalExpander) Apply(tbl *domain.Table) error {
	idx, ok := tbl.ColumnIndex(p.column)
	if !ok {
		return &domain.MissingColumnError{Pass: p.Name(), Column: p.column}
	}

	yearIdx, err := tbl.AddColumn(domain.ColYear, nil)
	if err != nil {
		return err
	}
	monthIdx, err := tbl.AddColumn(domain.ColMonth, nil)
	if err != nil {
		return err
	}
	dowIdx, err := tbl.AddColumn(domain.ColDayOfWeek, nil)
	if err != nil {
		return err
	}
	hourIdx, err := tbl.AddColumn(domain.ColHour, nil)
	if err != nil {
		return err
	}

	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		cell := row[idx]
		if domain.IsNull(cell) {
			continue
		}
		ts, ok := cell.(time.Time)
		if !ok {
			return &domain.MalformedTimestampError{
				Pass:   p.Name(),
				Row:    i,
				Column: p.column,
				Value:  fmt.Sprintf("%v", cell),
				Err:    errors.New("column has not been parsed into timestamps"),
			}
		}
		row[yearIdx] = ts.Year()
		row[monthIdx] = domain.MonthOf(ts.Month())
		row[dowIdx] = domain.WeekdayOf(ts.Weekday())
		row[hourIdx] = ts.Hour()
	}
	return nil
}
