package pipeline

import (
	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// DefaultLatitudeFloor rejects coordinates implausible for Greater London.
// Zero, negative, and equatorial latitudes all come from entry errors in
// the source data; London sits above 51°N, so 30 leaves generous margin.
const DefaultLatitudeFloor = 30.0

// CoherenceFilter drops rows whose latitude is missing or at or below the
// floor. It must run after CoordinateNormalizer so grid-only rows are
// judged on their resolved latitude rather than on a null.
type CoherenceFilter struct {
	floor float64
}

// NewCoherenceFilter creates the pass with the given latitude floor.
func NewCoherenceFilter(floor float64) *CoherenceFilter {
	return &CoherenceFilter{floor: floor}
}

func (p *CoherenceFilter) Name() string { return "coherence_filter" }

func (p *CoherenceFilter) Apply(tbl *domain.Table) error {
	idx, ok := tbl.ColumnIndex(domain.ColLatitude)
	if !ok {
		return &domain.MissingColumnError{Pass: p.Name(), Column: domain.ColLatitude}
	}
	tbl.Filter(func(row []any) bool {
		lat, ok := asFloat(row[idx])
		return ok && lat > p.floor
	})
	return nil
}
