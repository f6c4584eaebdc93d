package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	"github.com/couchcryptid/rescue-data-etl/internal/observability"
)

// CoordinatePolicy selects how reprojection failures are handled.
type CoordinatePolicy int

const (
	// CoordinateFailFast aborts the pass on the first malformed planar
	// coordinate. This is the default: a silent partial conversion would
	// corrupt the coherence filter downstream.
	CoordinateFailFast CoordinatePolicy = iota

	// CoordinateSkipRow leaves rows with malformed planar coordinates
	// unresolved and keeps going; the coherence filter drops them later.
	CoordinateSkipRow
)

// ParseCoordinatePolicy resolves the config spelling of a policy.
func ParseCoordinatePolicy(s string) (CoordinatePolicy, error) {
	switch s {
	case "fail":
		return CoordinateFailFast, nil
	case "skip":
		return CoordinateSkipRow, nil
	default:
		return 0, fmt.Errorf("unknown coordinate policy %q (want fail or skip)", s)
	}
}

func (p CoordinatePolicy) String() string {
	if p == CoordinateSkipRow {
		return "skip"
	}
	return "fail"
}

// CoordinateNormalizer fills missing latitude/longitude from British
// National Grid eastings/northings and then removes the planar columns.
// Rows whose latitude is already set are never overwritten: the geographic
// value takes precedence over the grid reference.
type CoordinateNormalizer struct {
	reprojector domain.Reprojector
	policy      CoordinatePolicy
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewCoordinateNormalizer creates the pass. The reprojector must convert
// EPSG 27700 planar pairs to EPSG 4326 geographic pairs.
func NewCoordinateNormalizer(reprojector domain.Reprojector, policy CoordinatePolicy, logger *slog.Logger, metrics *observability.Metrics) *CoordinateNormalizer {
	return &CoordinateNormalizer{
		reprojector: reprojector,
		policy:      policy,
		logger:      logger,
		metrics:     metrics,
	}
}

func (p *CoordinateNormalizer) Name() string { return "coordinate_normalizer" }

// planarColumns are removed unconditionally after resolution. They carry no
// information independent of the derived geographic coordinate.
var planarColumns = []string{
	domain.ColEastingRounded,
	domain.ColNorthingRounded,
	domain.ColEastingM,
	domain.ColNorthingM,
}

func (p *CoordinateNormalizer) Apply(tbl *domain.Table) error {
	latIdx, ok := tbl.ColumnIndex(domain.ColLatitude)
	if !ok {
		return &domain.MissingColumnError{Pass: p.Name(), Column: domain.ColLatitude}
	}
	lonIdx, ok := tbl.ColumnIndex(domain.ColLongitude)
	if !ok {
		return &domain.MissingColumnError{Pass: p.Name(), Column: domain.ColLongitude}
	}

	// Tables ingested without any grid reference columns have nothing to
	// resolve; the drops below are then no-ops as well.
	eastIdx, hasEast := tbl.ColumnIndex(domain.ColEastingRounded)
	northIdx, hasNorth := tbl.ColumnIndex(domain.ColNorthingRounded)

	if hasEast && hasNorth {
		if err := p.resolve(tbl, latIdx, lonIdx, eastIdx, northIdx); err != nil {
			return err
		}
	}

	for _, col := range planarColumns {
		tbl.DropColumn(col)
	}
	return nil
}

func (p *CoordinateNormalizer) resolve(tbl *domain.Table, latIdx, lonIdx, eastIdx, northIdx int) error {
	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		if !domain.IsNull(row[latIdx]) {
			continue
		}
		easting, ok := asFloat(row[eastIdx])
		if !ok || easting == 0 {
			continue
		}
		northing, _ := asFloat(row[northIdx])

		lat, lon, err := p.reprojector.Reproject(easting, northing)
		if err != nil {
			if p.policy == CoordinateSkipRow {
				p.logger.Warn("reprojection failed, leaving row unresolved",
					"row", i, "easting", easting, "northing", northing, "error", err)
				p.metrics.CoordinatesSkipped.Inc()
				continue
			}
			return &domain.MalformedCoordinateError{
				Pass:     p.Name(),
				Row:      i,
				Easting:  easting,
				Northing: northing,
				Err:      err,
			}
		}
		row[latIdx] = lat
		row[lonIdx] = lon
		p.metrics.CoordinatesResolved.Inc()
	}
	return nil
}

// asFloat interprets a numeric cell. Integers widen; strings and other
// types are not numbers here — the loader coerces numeric columns at
// ingest.
func asFloat(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
