// Command validate checks a cleaned animal rescue CSV against the
// pipeline's output contract: derived columns present, pruned and planar
// columns absent, latitudes above the coherence floor, category labels
// lowercased, calendar labels inside their ordered domains, and no exact
// duplicate rows.
//
// Usage:
//
//	go run ./cmd/validate -in animal_rescue_cleaned.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	"github.com/couchcryptid/rescue-data-etl/internal/pipeline"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) failf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func main() {
	in := flag.String("in", "animal_rescue_cleaned.csv", "cleaned CSV to validate")
	floor := flag.Float64("latitude-floor", pipeline.DefaultLatitudeFloor, "coherence threshold the rows must exceed")
	flag.Parse()

	if err := run(*in, *floor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, floor float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 1 {
		return fmt.Errorf("%s has no header row", path)
	}
	header, rows := records[0], records[1:]

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	phases := []*phase{
		checkColumns(col),
		checkLatitudes(col, rows, floor),
		checkCategories(col, rows),
		checkCalendarLabels(col, rows),
		checkDuplicates(rows),
	}

	failed := 0
	for _, p := range phases {
		if len(p.errors) == 0 {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("     %s\n", e)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d phases failed", failed, len(phases))
	}
	fmt.Printf("all %d phases passed over %d rows\n", len(phases), len(rows))
	return nil
}

func checkColumns(col map[string]int) *phase {
	p := &phase{name: "column contract"}

	for _, want := range []string{
		domain.ColLatitude, domain.ColLongitude, domain.ColAnimalGroupParent,
		domain.ColDateTimeOfCall, domain.ColYear, domain.ColMonth,
		domain.ColDayOfWeek, domain.ColHour,
	} {
		if _, ok := col[want]; !ok {
			p.failf("required column %q missing", want)
		}
	}

	for _, gone := range []string{
		domain.ColEastingRounded, domain.ColNorthingRounded,
		domain.ColEastingM, domain.ColNorthingM,
	} {
		if _, ok := col[gone]; ok {
			p.failf("planar column %q should have been dropped", gone)
		}
	}
	for _, pruned := range pipeline.PrunedColumns {
		if _, ok := col[pruned.Name]; ok {
			p.failf("pruned column %q still present", pruned.Name)
		}
	}
	return p
}

func checkLatitudes(col map[string]int, rows [][]string, floor float64) *phase {
	p := &phase{name: "latitude coherence"}
	i, ok := col[domain.ColLatitude]
	if !ok {
		p.failf("no latitude column")
		return p
	}
	for n, row := range rows {
		lat, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			p.failf("row %d: latitude %q is not numeric", n, row[i])
			continue
		}
		if lat <= floor {
			p.failf("row %d: latitude %v at or below floor %v", n, lat, floor)
		}
	}
	return p
}

func checkCategories(col map[string]int, rows [][]string) *phase {
	p := &phase{name: "category casing"}
	i, ok := col[domain.ColAnimalGroupParent]
	if !ok {
		p.failf("no animal_group_parent column")
		return p
	}
	for n, row := range rows {
		if row[i] != strings.ToLower(row[i]) {
			p.failf("row %d: animal_group_parent %q not lowercased", n, row[i])
		}
	}
	return p
}

func checkCalendarLabels(col map[string]int, rows [][]string) *phase {
	p := &phase{name: "calendar labels"}
	monthIdx, okM := col[domain.ColMonth]
	dowIdx, okD := col[domain.ColDayOfWeek]
	hourIdx, okH := col[domain.ColHour]
	if !okM || !okD || !okH {
		p.failf("derived calendar columns missing")
		return p
	}
	for n, row := range rows {
		if _, ok := domain.ParseMonth(row[monthIdx]); !ok {
			p.failf("row %d: month %q outside the twelve-name domain", n, row[monthIdx])
		}
		if _, ok := domain.ParseWeekday(row[dowIdx]); !ok {
			p.failf("row %d: dayofweek %q outside the seven-name domain", n, row[dowIdx])
		}
		if h, err := strconv.Atoi(row[hourIdx]); err != nil || h < 0 || h > 23 {
			p.failf("row %d: hour %q outside 0..23", n, row[hourIdx])
		}
	}
	return p
}

func checkDuplicates(rows [][]string) *phase {
	p := &phase{name: "exact duplicates"}
	seen := make(map[string]int, len(rows))
	for n, row := range rows {
		key := strings.Join(row, "\x1f")
		if first, dup := seen[key]; dup {
			p.failf("row %d duplicates row %d", n, first)
			continue
		}
		seen[key] = n
	}
	return p
}
