package domain

import "fmt"

// MalformedCoordinateError reports a planar coordinate that could not be
// reprojected. The run aborts rather than silently leaving part of the
// table unresolved, unless the caller opted into the skip policy.
type MalformedCoordinateError struct {
	Pass     string
	Row      int
	Easting  float64
	Northing float64
	Err      error
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("%s: row %d: malformed planar coordinate (%.1f, %.1f): %v",
		e.Pass, e.Row, e.Easting, e.Northing, e.Err)
}

func (e *MalformedCoordinateError) Unwrap() error { return e.Err }

// MalformedTimestampError reports a cell that does not conform to the fixed
// date/time layout, or holds an unparsed value where a parsed one is
// required.
type MalformedTimestampError struct {
	Pass   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("%s: row %d: column %q: malformed timestamp %q: %v",
		e.Pass, e.Row, e.Column, e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error { return e.Err }

// MissingColumnError reports a column a pass requires but the table lacks,
// typically because passes ran out of order.
type MissingColumnError struct {
	Pass   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q is missing", e.Pass, e.Column)
}
