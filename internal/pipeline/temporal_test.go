package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	"github.com/couchcryptid/rescue-data-etl/internal/pipeline"
)

func TestTemporalParser(t *testing.T) {
	pass := pipeline.NewTemporalParser(domain.ColDateTimeOfCall, pipeline.CallTimestampLayout)

	t.Run("day-first round trip", func(t *testing.T) {
		tbl := mustTable(t, []string{domain.ColDateTimeOfCall},
			[]any{"31/05/2022 18:38"},
			[]any{nil},
		)

		require.NoError(t, pass.Apply(tbl))

		ts, ok := tbl.At(0, 0).(time.Time)
		require.True(t, ok, "cell should now be a time.Time")
		assert.Equal(t, 2022, ts.Year())
		assert.Equal(t, time.May, ts.Month())
		assert.Equal(t, 31, ts.Day())
		assert.Equal(t, 18, ts.Hour())
		assert.Equal(t, 38, ts.Minute())

		assert.Nil(t, tbl.At(1, 0), "missing timestamps stay missing")
	})

	t.Run("reapplying is a no-op", func(t *testing.T) {
		tbl := mustTable(t, []string{domain.ColDateTimeOfCall}, []any{"01/06/2022 09:15"})
		require.NoError(t, pass.Apply(tbl))
		once := tbl.At(0, 0)
		require.NoError(t, pass.Apply(tbl))
		assert.Equal(t, once, tbl.At(0, 0))
	})

	t.Run("nonconforming string is fatal with row context", func(t *testing.T) {
		tbl := mustTable(t, []string{domain.ColDateTimeOfCall},
			[]any{"31/05/2022 18:38"},
			[]any{"2022-05-31T18:38:00Z"}, // ISO, not the dataset layout
		)

		err := pass.Apply(tbl)
		var tsErr *domain.MalformedTimestampError
		require.ErrorAs(t, err, &tsErr)
		assert.Equal(t, 1, tsErr.Row)
		assert.Equal(t, domain.ColDateTimeOfCall, tsErr.Column)
		assert.Equal(t, "2022-05-31T18:38:00Z", tsErr.Value)
	})

	t.Run("missing column", func(t *testing.T) {
		tbl := mustTable(t, []string{"other"})
		var missing *domain.MissingColumnError
		require.ErrorAs(t, pass.Apply(tbl), &missing)
	})
}

func TestTemporalExpander(t *testing.T) {
	pass := pipeline.NewTemporalExpander(domain.ColDateTimeOfCall)

	t.Run("derives calendar columns", func(t *testing.T) {
		tbl := mustTable(t, []string{domain.ColDateTimeOfCall},
			[]any{time.Date(2022, time.June, 1, 9, 15, 0, 0, time.UTC)},
			[]any{nil},
		)

		require.NoError(t, pass.Apply(tbl))
		assert.Equal(t, []string{
			domain.ColDateTimeOfCall,
			domain.ColYear, domain.ColMonth, domain.ColDayOfWeek, domain.ColHour,
		}, tbl.Columns())

		yearIdx, _ := tbl.ColumnIndex(domain.ColYear)
		monthIdx, _ := tbl.ColumnIndex(domain.ColMonth)
		dowIdx, _ := tbl.ColumnIndex(domain.ColDayOfWeek)
		hourIdx, _ := tbl.ColumnIndex(domain.ColHour)

		assert.Equal(t, 2022, tbl.At(0, yearIdx))
		assert.Equal(t, domain.June, tbl.At(0, monthIdx))
		assert.Equal(t, domain.Wednesday, tbl.At(0, dowIdx))
		assert.Equal(t, 9, tbl.At(0, hourIdx))

		// A null timestamp yields null calendar fields, not zeros.
		assert.Nil(t, tbl.At(1, yearIdx))
		assert.Nil(t, tbl.At(1, monthIdx))
	})

	t.Run("unparsed column is a contract violation", func(t *testing.T) {
		tbl := mustTable(t, []string{domain.ColDateTimeOfCall},
			[]any{"31/05/2022 18:38"}, // still a string: parser never ran
		)

		err := pass.Apply(tbl)
		var tsErr *domain.MalformedTimestampError
		require.ErrorAs(t, err, &tsErr)
		assert.Equal(t, "temporal_expander", tsErr.Pass)
	})

	t.Run("missing column", func(t *testing.T) {
		tbl := mustTable(t, []string{"other"})
		var missing *domain.MissingColumnError
		require.ErrorAs(t, pass.Apply(tbl), &missing)
		assert.Equal(t, domain.ColDateTimeOfCall, missing.Column)
	})
}
