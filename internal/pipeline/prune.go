package pipeline

import (
	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// PrunedColumn names a column the pipeline removes, with the finding from
// the correlation analysis that justified removing it.
type PrunedColumn struct {
	Name   string
	Reason string
}

// PrunedColumns is the fixed removal list from the dataset's correlation
// analysis. Absent entries are skipped silently, so the list is safe to
// apply to partial extracts.
var PrunedColumns = []PrunedColumn{
	// Identifier-like columns, independent of every outcome variable.
	{domain.ColIncidentNumber, "unique per row, no predictive value"},
	{domain.ColTypeOfIncident, "constant (all rows are special service)"},
	{domain.ColUPRN, "unique property reference number, identifier only"},
	{domain.ColUSRN, "unique street reference number, identifier only"},

	// Redundant calendar fields; the parsed timestamp carries the year.
	{domain.ColCalYear, "duplicates date_time_of_call year"},
	{domain.ColFinYear, "fiscal-year relabel of cal_year"},

	// Correlation ~1 with retained incident_notional_cost.
	{domain.ColHourlyNotionalCost, "near-perfectly correlated with incident cost"},
	{domain.ColPumpHoursTotal, "near-perfectly correlated with incident cost"},

	// Low-value descriptive and administrative-geography fields, superseded
	// by the resolved latitude/longitude.
	{domain.ColPostcodeDistrict, "coarse location duplicate"},
	{domain.ColStreet, "free text, superseded by coordinates"},
	{domain.ColStnGroundName, "station geography, superseded by coordinates"},
	{domain.ColBoroughCode, "coded duplicate of borough"},
	{domain.ColWard, "fine-grained geography, superseded by coordinates"},
	{domain.ColWardCode, "coded duplicate of ward"},
	{domain.ColFinalDescription, "free text, unusable without NLP"},
}

// ColumnPruner drops a fixed set of columns. Deletion is idempotent:
// a listed column that is absent is a no-op, not an error.
type ColumnPruner struct {
	columns []PrunedColumn
}

// NewColumnPruner creates the pass over the given removal list.
func NewColumnPruner(columns []PrunedColumn) *ColumnPruner {
	return &ColumnPruner{columns: columns}
}

func (p *ColumnPruner) Name() string { return "column_pruner" }

func (p *ColumnPruner) Apply(tbl *domain.Table) error {
	for _, col := range p.columns {
		tbl.DropColumn(col.Name)
	}
	return nil
}
