package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_CalendarOrder(t *testing.T) {
	// The whole point of the ordered domain: April sorts before August
	// even though "August" < "April" lexically.
	assert.Less(t, April, August)
	assert.Less(t, January, December)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, June, MonthOf(time.June))
	assert.Equal(t, "June", MonthOf(time.June).String())
}

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("November")
	require.True(t, ok)
	assert.Equal(t, November, m)

	_, ok = ParseMonth("november")
	assert.False(t, ok, "labels are case-sensitive")
	_, ok = ParseMonth("Smarch")
	assert.False(t, ok)
}

func TestMonth_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(May)
	require.NoError(t, err)
	assert.Equal(t, `"May"`, string(data))

	_, err = json.Marshal(Month(13))
	assert.Error(t, err)
}

func TestWeekday_MondayFirst(t *testing.T) {
	// Go's time package is Sunday-first; the dataset convention is
	// Monday-first, matching how the label columns must sort.
	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))
	assert.Less(t, Monday, Sunday)
	assert.Less(t, Friday, Saturday)
}

func TestWeekdayOf_KnownDate(t *testing.T) {
	// 1 June 2022 was a Wednesday.
	d := time.Date(2022, time.June, 1, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, Wednesday, WeekdayOf(d.Weekday()))
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("Wednesday")
	require.True(t, ok)
	assert.Equal(t, Wednesday, d)

	_, ok = ParseWeekday("Humpday")
	assert.False(t, ok)
}

func TestWeekday_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Tuesday)
	require.NoError(t, err)
	assert.Equal(t, `"Tuesday"`, string(data))

	_, err = json.Marshal(Weekday(7))
	assert.Error(t, err)
}
