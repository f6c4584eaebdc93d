// Command etl cleans the London Fire Brigade animal rescue dataset: it
// resolves geolocation from grid references, normalizes categorical and
// temporal fields, drops incoherent and duplicate rows, prunes low-value
// columns, and derives calendar features, writing the result as CSV and
// optionally publishing each cleaned row to Kafka.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/rescue-data-etl/internal/adapter/dataset"
	kafkaadapter "github.com/couchcryptid/rescue-data-etl/internal/adapter/kafka"
	"github.com/couchcryptid/rescue-data-etl/internal/adapter/proj"
	"github.com/couchcryptid/rescue-data-etl/internal/config"
	"github.com/couchcryptid/rescue-data-etl/internal/observability"
	"github.com/couchcryptid/rescue-data-etl/internal/pipeline"
)

var (
	flagInput  string
	flagOutput string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "etl",
		Short:         "Clean the LFB animal rescue dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "raw dataset path (.csv or .xlsx); overrides INPUT_PATH")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "cleaned CSV path; overrides OUTPUT_PATH")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagInput != "" {
		cfg.InputPath = flagInput
	}
	if flagOutput != "" {
		cfg.OutputPath = flagOutput
	}
	if cfg.InputPath == "" {
		return fmt.Errorf("no input dataset: set --input or INPUT_PATH")
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	policy, err := pipeline.ParseCoordinatePolicy(cfg.CoordinatePolicy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	raw, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", cfg.InputPath, "rows", raw.NumRows(), "columns", len(raw.Columns()))

	// The working table is mutated in place; the raw load stays untouched
	// for traceability.
	working := raw.Clone()

	passes := pipeline.Passes(proj.NewBNG(), policy, cfg.LatitudeFloor, logger, metrics)
	runner := pipeline.NewRunner(passes, logger, metrics)

	report, err := runner.Run(ctx, working)
	if err != nil {
		return err
	}

	if err := dataset.WriteCSVFile(working, cfg.OutputPath); err != nil {
		return err
	}
	logger.Info("cleaned dataset written", "path", cfg.OutputPath, "rows", working.NumRows())

	if cfg.KafkaEnabled() {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer writer.Close()
		if err := writer.PublishTable(ctx, working, report.FinishedAt); err != nil {
			return fmt.Errorf("publish cleaned records: %w", err)
		}
	}

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, "rescue-data-etl"); err != nil {
			// Metrics delivery is best-effort; the cleaned output already
			// landed on disk.
			logger.Warn("metrics push failed", "error", err)
		}
	}

	printSummary(cmd, report)
	return nil
}

// printSummary renders the per-pass row accounting for the operator.
func printSummary(cmd *cobra.Command, report *pipeline.RunReport) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetTitle("run %s", report.RunID)
	t.AppendHeader(table.Row{"pass", "rows before", "rows after", "dropped", "columns", "duration"})
	for _, p := range report.Passes {
		t.AppendRow(table.Row{
			p.Name, p.RowsBefore, p.RowsAfter, p.RowsBefore - p.RowsAfter, p.ColumnsAfter, p.Duration.Round(time.Microsecond),
		})
	}
	t.AppendFooter(table.Row{"total", report.RowsIn(), report.RowsOut(), report.RowsIn() - report.RowsOut(), "", ""})
	t.Render()
}
