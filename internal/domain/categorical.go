package domain

import (
	"fmt"
	"time"
)

// Month is an ordered categorical over the twelve month names. The integer
// value is the calendar position (January = 1), so ordering comparisons
// follow the calendar rather than lexical label order.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthOf maps a time.Month onto the categorical domain.
func MonthOf(m time.Month) Month {
	return Month(m)
}

// ParseMonth resolves a month label, e.g. "June" → June.
func ParseMonth(label string) (Month, bool) {
	for i, name := range monthNames {
		if name == label {
			return Month(i + 1), true
		}
	}
	return 0, false
}

// Valid reports whether the value is inside the twelve-name domain.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// MarshalJSON encodes the month as its label.
func (m Month) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("month %d outside January..December", int(m))
	}
	return []byte(`"` + m.String() + `"`), nil
}

// Weekday is an ordered categorical over the seven weekday names, Monday
// first (the dataset convention), so Monday sorts before Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayOf maps a time.Weekday (Sunday-first) onto the Monday-first domain.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

// ParseWeekday resolves a weekday label, e.g. "Wednesday" → Wednesday.
func ParseWeekday(label string) (Weekday, bool) {
	for i, name := range weekdayNames {
		if name == label {
			return Weekday(i), true
		}
	}
	return 0, false
}

// Valid reports whether the value is inside the seven-name domain.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalJSON encodes the weekday as its label.
func (d Weekday) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("weekday %d outside Monday..Sunday", int(d))
	}
	return []byte(`"` + d.String() + `"`), nil
}
