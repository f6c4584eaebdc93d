package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	"github.com/couchcryptid/rescue-data-etl/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Pass is one cleaning step over the whole table. Apply mutates the table
// in place and must either fully succeed or leave an error describing the
// first offending row; there is no partial-success mode.
type Pass interface {
	Name() string
	Apply(tbl *domain.Table) error
}

// PassStats records what a single pass did to the table.
type PassStats struct {
	Name          string
	RowsBefore    int
	RowsAfter     int
	ColumnsBefore int
	ColumnsAfter  int
	Duration      time.Duration
}

// RunReport summarizes a completed pipeline run.
type RunReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Passes     []PassStats
}

// RowsIn returns the row count before the first pass ran.
func (r *RunReport) RowsIn() int {
	if len(r.Passes) == 0 {
		return 0
	}
	return r.Passes[0].RowsBefore
}

// RowsOut returns the row count after the last pass ran.
func (r *RunReport) RowsOut() int {
	if len(r.Passes) == 0 {
		return 0
	}
	return r.Passes[len(r.Passes)-1].RowsAfter
}

// Runner applies a fixed sequence of passes to a table. The first pass
// error aborts the run; passes never overlap and share no state beyond the
// table itself.
type Runner struct {
	passes  []Pass
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRunner creates a Runner over the given pass sequence.
func NewRunner(passes []Pass, logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{passes: passes, logger: logger, metrics: metrics}
}

// Passes returns the default cleaning sequence for the animal rescue
// dataset. Order matters: coordinates must resolve before the coherence
// filter sees them, and timestamps must parse before calendar expansion.
func Passes(reprojector domain.Reprojector, policy CoordinatePolicy, latitudeFloor float64, logger *slog.Logger, metrics *observability.Metrics) []Pass {
	return []Pass{
		NewCoordinateNormalizer(reprojector, policy, logger, metrics),
		NewCategoricalNormalizer(domain.ColAnimalGroupParent),
		NewTemporalParser(domain.ColDateTimeOfCall, CallTimestampLayout),
		NewCoherenceFilter(latitudeFloor),
		NewDeduplicator(),
		NewColumnPruner(PrunedColumns),
		NewTemporalExpander(domain.ColDateTimeOfCall),
	}
}

// Run executes every pass in order against the table. It returns a report
// for the completed run, or the first pass error with the partial report
// discarded.
func (r *Runner) Run(ctx context.Context, tbl *domain.Table) (*RunReport, error) {
	report := &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: clock.Now(),
		Passes:    make([]PassStats, 0, len(r.passes)),
	}
	r.logger.Info("pipeline started", "run_id", report.RunID, "rows", tbl.NumRows(), "columns", len(tbl.Columns()))

	for _, pass := range r.passes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline cancelled before pass %s: %w", pass.Name(), err)
		}

		stats := PassStats{
			Name:          pass.Name(),
			RowsBefore:    tbl.NumRows(),
			ColumnsBefore: len(tbl.Columns()),
		}
		start := time.Now()

		if err := pass.Apply(tbl); err != nil {
			r.logger.Error("pass failed", "run_id", report.RunID, "pass", pass.Name(), "error", err)
			r.metrics.PassErrors.WithLabelValues(pass.Name()).Inc()
			return nil, fmt.Errorf("pass %s: %w", pass.Name(), err)
		}

		stats.Duration = time.Since(start)
		stats.RowsAfter = tbl.NumRows()
		stats.ColumnsAfter = len(tbl.Columns())
		report.Passes = append(report.Passes, stats)

		dropped := stats.RowsBefore - stats.RowsAfter
		r.metrics.RowsDropped.WithLabelValues(pass.Name()).Add(float64(dropped))
		r.metrics.PassDuration.WithLabelValues(pass.Name()).Observe(stats.Duration.Seconds())
		r.logger.Info("pass complete",
			"run_id", report.RunID,
			"pass", pass.Name(),
			"rows_before", stats.RowsBefore,
			"rows_after", stats.RowsAfter,
			"columns", stats.ColumnsAfter,
			"duration", stats.Duration,
		)
	}

	report.FinishedAt = clock.Now()
	r.metrics.RowsIn.Set(float64(report.RowsIn()))
	r.metrics.RowsOut.Set(float64(report.RowsOut()))
	r.logger.Info("pipeline complete", "run_id", report.RunID, "rows_in", report.RowsIn(), "rows_out", report.RowsOut())
	return report, nil
}

// clock is a package-level time source so tests can freeze run timestamps.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
